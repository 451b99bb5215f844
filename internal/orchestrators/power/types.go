package power

import (
	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	rollsession "github.com/KirkDiggler/statblock-importer/internal/repositories/roll_session"
)

// Tier bands of a power roll total
const (
	Tier1Max = 11
	Tier2Max = 16
)

// Power rolls are two ten-sided dice plus a characteristic
const (
	DiceCount = 2
	DieSize   = 10
)

// RollInput defines the request for rolling an ability's power roll
type RollInput struct {
	Ability             *drawsteel.Ability
	CharacteristicScore int
	MonsterID           string // rolls are recorded only when set
}

// TierEffect is one effect entry's payload at the rolled tier. Only the
// field matching Kind is set.
type TierEffect struct {
	EntryID string                 `json:"entry_id"`
	Kind    drawsteel.EffectKind   `json:"kind"`
	Name    string                 `json:"name"`
	Damage  *drawsteel.DamageTier  `json:"damage,omitempty"`
	Applied *drawsteel.AppliedTier `json:"applied,omitempty"`
	Forced  *drawsteel.ForcedTier  `json:"forced,omitempty"`
	Special *drawsteel.SpecialTier `json:"special,omitempty"`
}

// RollOutput defines the response for a power roll
type RollOutput struct {
	Dice    []int
	Total   int
	Tier    drawsteel.Tier
	Effects []TierEffect
}

// HistoryInput defines the request for a monster's recent rolls
type HistoryInput struct {
	MonsterID string
}

// HistoryOutput defines the response for a monster's recent rolls
type HistoryOutput struct {
	Rolls []rollsession.Roll
}
