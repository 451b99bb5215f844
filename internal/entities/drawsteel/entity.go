package drawsteel

import "github.com/KirkDiggler/rpg-toolkit/core"

// GetID returns the monster's ID
func (m *Monster) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

// Compile-time check that Monster implements core.Entity
var _ core.Entity = (*Monster)(nil)
