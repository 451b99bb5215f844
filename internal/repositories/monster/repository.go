// Package monster provides the interface for imported monster persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/KirkDiggler/statblock-importer/internal/repositories/monster Repository

import (
	"context"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

// Repository defines the interface for monster persistence
type Repository interface {
	// Create stores a new monster
	// Returns errors.InvalidArgument for a nil monster or empty ID
	// Returns errors.AlreadyExists if a monster with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a monster by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the monster doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all stored monsters ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a monster by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the monster doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for storing a monster
type CreateInput struct {
	Monster *drawsteel.Monster
}

// CreateOutput defines the output for storing a monster
type CreateOutput struct {
	Monster *drawsteel.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *drawsteel.Monster
}

// ListInput defines the input for listing monsters
type ListInput struct {
	// Limit caps the number of results; zero means no limit
	Limit int
}

// ListOutput defines the output for listing monsters
type ListOutput struct {
	Monsters []*drawsteel.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct{}
