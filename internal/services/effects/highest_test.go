package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
)

func TestHighestCharacteristic(t *testing.T) {
	testCases := []struct {
		name   string
		scores drawsteel.Characteristics
		want   drawsteel.Characteristic
	}{
		{
			name:   "tie resolves in canonical order",
			scores: drawsteel.Characteristics{Might: 10, Agility: 10},
			want:   drawsteel.CharacteristicMight,
		},
		{
			name:   "all zero is might",
			scores: drawsteel.Characteristics{},
			want:   drawsteel.CharacteristicMight,
		},
		{
			name:   "clear winner",
			scores: drawsteel.Characteristics{Might: 1, Agility: 2, Reason: -1, Intuition: 0, Presence: 3},
			want:   drawsteel.CharacteristicPresence,
		},
		{
			name:   "later tie loses",
			scores: drawsteel.Characteristics{Might: -1, Agility: 2, Reason: 2, Intuition: 2},
			want:   drawsteel.CharacteristicAgility,
		},
		{
			name:   "negative scores",
			scores: drawsteel.Characteristics{Might: -3, Agility: -2, Reason: -5, Intuition: -2, Presence: -4},
			want:   drawsteel.CharacteristicAgility,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, effects.HighestCharacteristic(tc.scores))
		})
	}
}

func TestAppliedDisplay(t *testing.T) {
	assert.Equal(t, "{{potency}} dazed (EoT)", effects.AppliedDisplay(drawsteel.ParsedTier{
		Condition: drawsteel.ConditionDazed,
		Duration:  drawsteel.DurationTurn,
	}))
	assert.Equal(t, "{{potency}} frightened of the dragon (end of encounter)", effects.AppliedDisplay(drawsteel.ParsedTier{
		Condition: drawsteel.ConditionFrightened,
		Duration:  drawsteel.DurationEncounter,
		Narrative: "of the dragon",
	}))
}

func TestClassify(t *testing.T) {
	kind, ok := effects.Classify(drawsteel.ParsedTier{DamageValue: 2, Condition: "dazed"})
	assert.True(t, ok)
	assert.Equal(t, drawsteel.EffectKindDamage, kind)

	kind, ok = effects.Classify(drawsteel.ParsedTier{
		Condition: "dazed",
		Movement:  &drawsteel.Movement{Verb: drawsteel.MovementPush, Distance: 1},
	})
	assert.True(t, ok)
	assert.Equal(t, drawsteel.EffectKindApplied, kind)

	_, ok = effects.Classify(drawsteel.ParsedTier{})
	assert.False(t, ok)
}
