package extraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/extraction"
)

type ExtractionTestSuite struct {
	suite.Suite
}

func TestExtractionSuite(t *testing.T) {
	suite.Run(t, new(ExtractionTestSuite))
}

func (s *ExtractionTestSuite) TestExtractDamage() {
	testCases := []struct {
		name         string
		input        string
		wantNil      bool
		wantValue    int
		wantTypes    []string
		wantResidual string
	}{
		{
			name:         "typed damage",
			input:        "2 fire damage",
			wantValue:    2,
			wantTypes:    []string{"fire"},
			wantResidual: "",
		},
		{
			name:         "untyped damage",
			input:        "7 damage; push 2",
			wantValue:    7,
			wantTypes:    []string{},
			wantResidual: "; push 2",
		},
		{
			name:         "type is lower-cased",
			input:        "12 Corruption damage and the target is weakened",
			wantValue:    12,
			wantTypes:    []string{"corruption"},
			wantResidual: " and the target is weakened",
		},
		{
			name:         "first match wins",
			input:        "3 cold damage or 5 fire damage",
			wantValue:    3,
			wantTypes:    []string{"cold"},
			wantResidual: " or 5 fire damage",
		},
		{
			name:    "no damage",
			input:   "the target is grabbed",
			wantNil: true,
		},
		{
			name:    "empty text",
			input:   "",
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			damage, residual := extraction.ExtractDamage(tc.input)
			if tc.wantNil {
				s.Nil(damage)
				s.Equal(tc.input, residual)
				return
			}
			s.Require().NotNil(damage)
			s.Equal(tc.wantValue, damage.Value)
			s.Equal(tc.wantTypes, damage.Types)
			s.Equal(tc.wantResidual, residual)
		})
	}
}

func (s *ExtractionTestSuite) TestExtractDamage_MatchedSpanRemoved() {
	for _, damageType := range []string{"fire", "Holy", "POISON", "psychic"} {
		input := "deals 4 " + damageType + " damage to the target"
		damage, residual := extraction.ExtractDamage(input)
		s.Require().NotNil(damage)
		s.Equal(4, damage.Value)
		s.Len(damage.Types, 1)
		s.NotContains(residual, "damage")
		s.NotContains(residual, damageType)
	}
}

func (s *ExtractionTestSuite) TestExtractMovement() {
	testCases := []struct {
		name         string
		input        string
		wantVerb     drawsteel.MovementVerb
		wantDistance int
		wantNil      bool
	}{
		{name: "slide", input: "slide 1", wantVerb: drawsteel.MovementSlide, wantDistance: 1},
		{name: "push mixed case", input: "then PUSH 3 squares", wantVerb: drawsteel.MovementPush, wantDistance: 3},
		{name: "pull without space", input: "pull2", wantVerb: drawsteel.MovementPull, wantDistance: 2},
		{name: "shift", input: "the monster can shift 4", wantVerb: drawsteel.MovementShift, wantDistance: 4},
		{name: "verb without distance", input: "the target is pushed away", wantNil: true},
		{name: "no movement", input: "the target is dazed", wantNil: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			movement, residual := extraction.ExtractMovement(tc.input)
			if tc.wantNil {
				s.Nil(movement)
				s.Equal(tc.input, residual)
				return
			}
			s.Require().NotNil(movement)
			s.Equal(tc.wantVerb, movement.Verb)
			s.Equal(tc.wantDistance, movement.Distance)
		})
	}
}

func (s *ExtractionTestSuite) TestExtractCondition() {
	testCases := []struct {
		name          string
		input         string
		wantCondition string
		wantPotency   *drawsteel.PotencyTrigger
		wantDuration  drawsteel.Duration
		wantNarrative string
	}{
		{
			name:          "potency with save ends",
			input:         "A < 2 the target is grabbed (save ends)",
			wantCondition: drawsteel.ConditionGrabbed,
			wantPotency:   &drawsteel.PotencyTrigger{Characteristic: drawsteel.CharacteristicAgility, Threshold: 2},
			wantDuration:  drawsteel.DurationSave,
			wantNarrative: "",
		},
		{
			name:          "upper case condition",
			input:         "M<1 SLOWED (EoT)",
			wantCondition: drawsteel.ConditionSlowed,
			wantPotency:   &drawsteel.PotencyTrigger{Characteristic: drawsteel.CharacteristicMight, Threshold: 1},
			wantDuration:  drawsteel.DurationTurn,
			wantNarrative: "",
		},
		{
			name:          "no duration defaults to save",
			input:         "the target is knocked prone",
			wantCondition: drawsteel.ConditionProne,
			wantDuration:  drawsteel.DurationSave,
			wantNarrative: "knocked",
		},
		{
			name:          "vocabulary order beats text order",
			input:         "weakened and bleeding (save ends)",
			wantCondition: drawsteel.ConditionBleeding,
			wantDuration:  drawsteel.DurationSave,
			wantNarrative: "weakened",
		},
		{
			name:          "encounter duration",
			input:         "P < 3 frightened until end of encounter",
			wantCondition: drawsteel.ConditionFrightened,
			wantPotency:   &drawsteel.PotencyTrigger{Characteristic: drawsteel.CharacteristicPresence, Threshold: 3},
			wantDuration:  drawsteel.DurationEncounter,
			wantNarrative: "until",
		},
		{
			name:          "duration phrase between words",
			input:         "the target is grabbed and must save each round",
			wantCondition: drawsteel.ConditionGrabbed,
			wantDuration:  drawsteel.DurationSave,
			wantNarrative: "must each round",
		},
		{
			name:          "long encounter phrase",
			input:         "R < 2 the target is frightened until the end of the encounter",
			wantCondition: drawsteel.ConditionFrightened,
			wantPotency:   &drawsteel.PotencyTrigger{Characteristic: drawsteel.CharacteristicReason, Threshold: 2},
			wantDuration:  drawsteel.DurationEncounter,
			wantNarrative: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			match := extraction.ExtractCondition(tc.input)
			s.Require().NotNil(match)
			s.Equal(tc.wantCondition, match.Condition)
			s.Equal(tc.wantPotency, match.Potency)
			s.Equal(tc.wantDuration, match.Duration)
			s.Equal(tc.wantNarrative, match.Narrative)
		})
	}
}

func (s *ExtractionTestSuite) TestExtractCondition_NoCondition() {
	s.Nil(extraction.ExtractCondition("the target is pushed back"))
	s.Nil(extraction.ExtractCondition(""))
}

func TestMapCharacteristic(t *testing.T) {
	testCases := map[string]drawsteel.Characteristic{
		"m": drawsteel.CharacteristicMight,
		"M": drawsteel.CharacteristicMight,
		"a": drawsteel.CharacteristicAgility,
		"r": drawsteel.CharacteristicReason,
		"i": drawsteel.CharacteristicIntuition,
		"p": drawsteel.CharacteristicPresence,
		"x": drawsteel.CharacteristicNone,
		"":  drawsteel.CharacteristicNone,
		"z": drawsteel.CharacteristicNone,
	}

	for letter, want := range testCases {
		assert.Equal(t, want, extraction.MapCharacteristic(letter), "letter %q", letter)
	}
}

func TestLookupDuration(t *testing.T) {
	testCases := []struct {
		input string
		want  drawsteel.Duration
		found bool
	}{
		{input: "(EoT)", want: drawsteel.DurationTurn, found: true},
		{input: "until the end of turn", want: drawsteel.DurationTurn, found: true},
		{input: "(save ends)", want: drawsteel.DurationSave, found: true},
		{input: "end of encounter", want: drawsteel.DurationEncounter, found: true},
		{input: "until their next respite", want: drawsteel.DurationRespite, found: true},
		{input: "the target is saved", found: false},
		{input: "", found: false},
	}

	for _, tc := range testCases {
		got, found := extraction.LookupDuration(tc.input)
		assert.Equal(t, tc.found, found, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestVocabulary(t *testing.T) {
	vocab := extraction.NewVocabulary("Dazed", " Burning ", "", "burning")

	names := vocab.Names()
	require.Len(t, names, len(drawsteel.DefaultConditions)+1)
	assert.Equal(t, "burning", names[len(names)-1])

	assert.True(t, vocab.Lookup("GRABBED"))
	assert.True(t, vocab.Lookup("burning"))
	assert.False(t, vocab.Lookup("asleep"))

	assert.Equal(t, drawsteel.EffectKindApplied, vocab.Classify("burning"))
	assert.Equal(t, drawsteel.EffectKindSpecial, vocab.Classify("asleep"))

	assert.Equal(t, []string{"slowed", "burning"}, vocab.FindAll("Burning and slowed (save ends)"))
	assert.Empty(t, vocab.FindAll("nothing here"))
}

func TestExtractCondition_IgnoresCustomConditions(t *testing.T) {
	vocab := extraction.NewVocabulary("burning")
	require.True(t, vocab.Lookup("burning"))

	assert.Nil(t, extraction.ExtractCondition("the target is burning (save ends)"))
}
