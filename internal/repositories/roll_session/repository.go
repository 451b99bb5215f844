// Package rollsession stores the recent power rolls made for a monster
package rollsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsessionmock github.com/KirkDiggler/statblock-importer/internal/repositories/roll_session Repository

// Session is the rolling window of power rolls for one monster
type Session struct {
	// Monster the rolls were made for
	MonsterID string `json:"monster_id"`

	// Rolls in the order they were made
	Rolls []Roll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Roll is one resolved power roll
type Roll struct {
	// Position of this roll within the session, starting at 1
	Sequence int `json:"sequence"`

	// Ability DSID the roll was made for
	Ability string `json:"ability"`

	Dice     []int          `json:"dice"`
	Modifier int            `json:"modifier"`
	Total    int            `json:"total"`
	Tier     drawsteel.Tier `json:"tier"`
	RolledAt time.Time      `json:"rolled_at"`
}

// Repository defines the storage interface for roll sessions
type Repository interface {
	// Append adds a roll to the monster's session, creating the session
	// if it does not exist. The session keeps its original expiry.
	// Returns errors.InvalidArgument for an empty monster ID
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get returns the monster's live session
	// Returns errors.NotFound if there is none or it has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the monster's session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// AppendInput contains parameters for recording a roll
type AppendInput struct {
	MonsterID string
	Roll      Roll
	TTL       time.Duration // lifetime of a new session, defaults to 15 minutes
}

// AppendOutput contains the session after the roll was added
type AppendOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	MonsterID string
}

// GetOutput contains the retrieved session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	MonsterID string
}

// DeleteOutput reports how many rolls were dropped
type DeleteOutput struct {
	RollsDeleted int
}
