package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/extraction"
)

func TestParseTierText(t *testing.T) {
	t.Run("damage only", func(t *testing.T) {
		parsed := extraction.ParseTierText("2 fire damage")

		assert.Equal(t, 2, parsed.DamageValue)
		assert.Equal(t, []string{"fire"}, parsed.DamageTypes)
		assert.Nil(t, parsed.Movement)
		assert.Empty(t, parsed.Condition)
		assert.Empty(t, parsed.Duration)
		assert.Empty(t, parsed.Narrative)
	})

	t.Run("movement only", func(t *testing.T) {
		parsed := extraction.ParseTierText("slide 1")

		assert.Zero(t, parsed.DamageValue)
		assert.Equal(t, []string{}, parsed.DamageTypes)
		require.NotNil(t, parsed.Movement)
		assert.Equal(t, drawsteel.MovementSlide, parsed.Movement.Verb)
		assert.Equal(t, 1, parsed.Movement.Distance)
		assert.Empty(t, parsed.Narrative)
	})

	t.Run("condition with potency", func(t *testing.T) {
		parsed := extraction.ParseTierText("A < 2 the target is grabbed (save ends)")

		assert.Equal(t, drawsteel.ConditionGrabbed, parsed.Condition)
		require.NotNil(t, parsed.Potency)
		assert.Equal(t, drawsteel.CharacteristicAgility, parsed.Potency.Characteristic)
		assert.Equal(t, 2, parsed.Potency.Threshold)
		assert.Equal(t, drawsteel.DurationSave, parsed.Duration)
		assert.Empty(t, parsed.Narrative)
	})

	t.Run("all extractors in one chunk", func(t *testing.T) {
		parsed := extraction.ParseTierText("9 damage, push 3, and M < 2 dazed (EoT)")

		assert.Equal(t, 9, parsed.DamageValue)
		require.NotNil(t, parsed.Movement)
		assert.Equal(t, drawsteel.MovementPush, parsed.Movement.Verb)
		assert.Equal(t, 3, parsed.Movement.Distance)
		assert.Equal(t, drawsteel.ConditionDazed, parsed.Condition)
		assert.Equal(t, drawsteel.DurationTurn, parsed.Duration)
		assert.Empty(t, parsed.Narrative)
	})

	t.Run("pure narrative", func(t *testing.T) {
		parsed := extraction.ParseTierText("The target can't use triggered actions.")

		assert.Zero(t, parsed.DamageValue)
		assert.Nil(t, parsed.Movement)
		assert.Empty(t, parsed.Condition)
		assert.Equal(t, "The target can't use triggered actions", parsed.Narrative)
	})

	t.Run("damage leaves trailing narrative", func(t *testing.T) {
		parsed := extraction.ParseTierText("6 damage and the target loses 1 recovery")

		assert.Equal(t, 6, parsed.DamageValue)
		assert.Equal(t, "the target loses 1 recovery", parsed.Narrative)
	})

	t.Run("empty and whitespace", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\t"} {
			parsed := extraction.ParseTierText(input)
			assert.Zero(t, parsed.DamageValue)
			assert.Nil(t, parsed.Movement)
			assert.Empty(t, parsed.Condition)
			assert.Empty(t, parsed.Narrative)
		}
	})
}

func TestParseTierText_Deterministic(t *testing.T) {
	inputs := []string{
		"2 fire damage",
		"5 damage; push 2",
		"R < 1 the target is frightened (save ends)",
		"The ground within 2 squares becomes difficult terrain",
	}

	for _, input := range inputs {
		assert.Equal(t, extraction.ParseTierText(input), extraction.ParseTierText(input), input)
	}
}

func TestParseTierText_NarrativeIsFullyConsumed(t *testing.T) {
	inputs := []string{
		"8 cold damage and the target is slowed (save ends)",
		"4 damage; slide 2",
		"A < 1 the target is restrained (EoT)",
		"3 psychic damage, pull 5, the target is taunted",
		"the target can't shift until the end of their next turn",
	}

	for _, input := range inputs {
		first := extraction.ParseTierText(input)
		second := extraction.ParseTierText(first.Narrative)

		assert.Zero(t, second.DamageValue, input)
		assert.Nil(t, second.Movement, input)
		assert.Empty(t, second.Condition, input)
	}
}

func TestParseTierText_OnlyFirstMatchIsStructured(t *testing.T) {
	testCases := []struct {
		input         string
		wantDamage    int
		wantMovement  *drawsteel.Movement
		wantCondition string
		wantNarrative string
	}{
		{
			input:         "2 damage and 3 fire damage",
			wantDamage:    2,
			wantNarrative: "3 fire damage",
		},
		{
			input:         "slide 1 and push 2",
			wantMovement:  &drawsteel.Movement{Verb: drawsteel.MovementSlide, Distance: 1},
			wantNarrative: "push 2",
		},
		{
			input:         "dazed and frightened",
			wantCondition: drawsteel.ConditionDazed,
			wantNarrative: "frightened",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			parsed := extraction.ParseTierText(tc.input)

			assert.Equal(t, tc.wantDamage, parsed.DamageValue)
			assert.Equal(t, tc.wantMovement, parsed.Movement)
			assert.Equal(t, tc.wantCondition, parsed.Condition)
			assert.Equal(t, tc.wantNarrative, parsed.Narrative)
		})
	}
}
