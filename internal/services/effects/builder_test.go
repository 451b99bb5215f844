package effects_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
)

type BuilderTestSuite struct {
	suite.Suite
	builder *effects.Builder
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	s.builder = effects.NewBuilder(&effects.Config{
		IDGenerator: idgen.NewSequential("fx"),
	})
}

func (s *BuilderTestSuite) ordered(out *effects.BuildOutput) []*drawsteel.EffectEntry {
	s.Require().Len(out.Order, len(out.Effects))
	entries := make([]*drawsteel.EffectEntry, 0, len(out.Order))
	for _, id := range out.Order {
		entry, ok := out.Effects[id]
		s.Require().True(ok, "order references unknown id %s", id)
		s.Equal(id, entry.ID)
		entries = append(entries, entry)
	}
	return entries
}

func (s *BuilderTestSuite) TestDamageAndForcedInOneTier() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"2 fire damage; slide 1"},
		Highest: drawsteel.CharacteristicAgility,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 2)

	damage := entries[0]
	s.Equal(drawsteel.EffectKindDamage, damage.Type)
	s.Empty(damage.Name)
	s.Require().NotNil(damage.Damage[drawsteel.Tier1])
	s.Equal("2", damage.Damage[drawsteel.Tier1].Value)
	s.Equal([]string{"fire"}, damage.Damage[drawsteel.Tier1].Types)
	s.Equal("none", damage.Damage[drawsteel.Tier1].Potency.Characteristic)
	s.Equal("@potency.weak", damage.Damage[drawsteel.Tier1].Potency.Value)

	forced := entries[1]
	s.Equal(drawsteel.EffectKindForced, forced.Type)
	s.Equal("slide", forced.Name)
	s.Require().NotNil(forced.Forced[drawsteel.Tier1])
	s.Equal("1", forced.Forced[drawsteel.Tier1].Distance)
	s.Equal([]string{"slide"}, forced.Forced[drawsteel.Tier1].Movement)
	s.Equal(drawsteel.DisplayForced, forced.Forced[drawsteel.Tier1].Display)
	s.Equal("agility", forced.Forced[drawsteel.Tier1].Potency.Characteristic)

	s.Empty(out.Notes)
}

func (s *BuilderTestSuite) TestAppliedConditionWithPotency() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"A < 2 the target is grabbed (save ends)"},
		Highest: drawsteel.CharacteristicMight,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)

	applied := entries[0]
	s.Equal(drawsteel.EffectKindApplied, applied.Type)
	s.Equal("Grabbed", applied.Name)

	tier1 := applied.Applied[drawsteel.Tier1]
	s.Require().NotNil(tier1)
	s.Equal("agility", tier1.Potency.Characteristic)
	s.Equal("{{potency}} grabbed (save ends)", tier1.Display)
	s.Equal(drawsteel.ConditionEffect{
		Condition:  "failure",
		End:        drawsteel.DurationSave,
		Properties: []string{},
	}, tier1.Effects[drawsteel.ConditionGrabbed])
}

func (s *BuilderTestSuite) TestDurationPhraseMidSentenceKeepsWordsApart() {
	testCases := []struct {
		name  string
		tier1 string
		want  string
	}{
		{
			name:  "until the encounter ends",
			tier1: "A < 1 the target is slowed until the encounter ends",
			want:  "{{potency}} slowed (end of encounter)",
		},
		{
			name:  "bare save between words",
			tier1: "the target is grabbed and must save each round",
			want:  "{{potency}} grabbed must each round (save ends)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := s.builder.Build(&effects.BuildInput{
				Tiers:   [3]string{tc.tier1},
				Highest: drawsteel.CharacteristicMight,
			})

			entries := s.ordered(out)
			s.Require().Len(entries, 1)
			tier1 := entries[0].Applied[drawsteel.Tier1]
			s.Require().NotNil(tier1)
			s.Equal(tc.want, tier1.Display)
		})
	}
}

func (s *BuilderTestSuite) TestSameConditionMergesAcrossTiers() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"A < 1 grabbed", "A < 2 grabbed", ""},
		Highest: drawsteel.CharacteristicMight,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)

	applied := entries[0]
	s.True(applied.HasTier(drawsteel.Tier1))
	s.True(applied.HasTier(drawsteel.Tier2))
	s.False(applied.HasTier(drawsteel.Tier3))
	s.NotEmpty(applied.Applied[drawsteel.Tier1].Display)
	s.Empty(applied.Applied[drawsteel.Tier2].Display)
	s.Equal("@potency.average", applied.Applied[drawsteel.Tier2].Potency.Value)
}

func (s *BuilderTestSuite) TestConditionWithoutPotencyUsesHighest() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"", "", "the target is slowed (EoT)"},
		Highest: drawsteel.CharacteristicReason,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)
	tier3 := entries[0].Applied[drawsteel.Tier3]
	s.Require().NotNil(tier3)
	s.Equal("reason", tier3.Potency.Characteristic)
	s.Equal("@potency.strong", tier3.Potency.Value)
	s.Equal(drawsteel.DurationTurn, tier3.Effects[drawsteel.ConditionSlowed].End)
}

func (s *BuilderTestSuite) TestDamageIsNotScaledAcrossTiers() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"3 damage", "5 damage", "7 damage"},
		Highest: drawsteel.CharacteristicPresence,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)

	damage := entries[0].Damage
	s.Equal("3", damage[drawsteel.Tier1].Value)
	s.Equal("5", damage[drawsteel.Tier2].Value)
	s.Equal("7", damage[drawsteel.Tier3].Value)
	s.Equal([]string{}, damage[drawsteel.Tier1].Types)
	s.Equal("none", damage[drawsteel.Tier1].Potency.Characteristic)
	s.Equal("presence", damage[drawsteel.Tier2].Potency.Characteristic)
	s.Equal("presence", damage[drawsteel.Tier3].Potency.Characteristic)
}

func (s *BuilderTestSuite) TestDifferentDamageTypesStaySeparate() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers: [3]string{"2 fire damage", "4 cold damage", "6 fire damage"},
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 2)
	s.True(entries[0].HasTier(drawsteel.Tier1))
	s.True(entries[0].HasTier(drawsteel.Tier3))
	s.False(entries[0].HasTier(drawsteel.Tier2))
	s.True(entries[1].HasTier(drawsteel.Tier2))
}

func (s *BuilderTestSuite) TestEmptyHighestIsUnset() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers: [3]string{"3 damage", "5 damage"},
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)
	s.Equal("", entries[0].Damage[drawsteel.Tier2].Potency.Characteristic)
}

func (s *BuilderTestSuite) TestNarrativeBecomesSpecial() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers:   [3]string{"The target can't use triggered actions."},
		Highest: drawsteel.CharacteristicIntuition,
	})

	entries := s.ordered(out)
	s.Require().Len(entries, 1)
	s.Equal(drawsteel.EffectKindSpecial, entries[0].Type)
	s.Equal("Special", entries[0].Name)
	s.Equal("The target can't use triggered actions", entries[0].Special[drawsteel.Tier1].Display)
	s.Equal("intuition", entries[0].Special[drawsteel.Tier1].Potency.Characteristic)
	s.Empty(out.Notes)
}

func (s *BuilderTestSuite) TestDamageNarrativeGoesToNotes() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers: [3]string{"6 damage and the target loses 1 recovery"},
	})

	s.Len(out.Effects, 1)
	s.Equal([]string{"the target loses 1 recovery"}, out.Notes)
}

func (s *BuilderTestSuite) TestBlankChunksAreDropped() {
	out := s.builder.Build(&effects.BuildInput{
		Tiers: [3]string{"  ;  ; ", "", "\n"},
	})

	s.Empty(out.Effects)
	s.Empty(out.Order)
}

func (s *BuilderTestSuite) TestNilInput() {
	out := s.builder.Build(nil)
	s.NotNil(out.Effects)
	s.Empty(out.Effects)
}

func (s *BuilderTestSuite) TestDefaultGeneratorIDsAreUnique() {
	builder := effects.NewBuilder(nil)
	out := builder.Build(&effects.BuildInput{
		Tiers: [3]string{"2 fire damage; slide 1; dazed; The ground shakes"},
	})

	s.Len(out.Effects, 4)
	for id := range out.Effects {
		s.Len(id, idgen.FoundryIDLength)
	}
}
