package narrative_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/narrative"
)

type NarrativeTestSuite struct {
	suite.Suite
}

func TestNarrativeSuite(t *testing.T) {
	suite.Run(t, new(NarrativeTestSuite))
}

func (s *NarrativeTestSuite) TestEnrich() {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "typed damage",
			input: "3 Fire damage",
			want:  "[[/damage 3 fire]] damage",
		},
		{
			name:  "untyped damage",
			input: "The target takes 5 damage.",
			want:  "The target takes [[/damage 5]] damage.",
		},
		{
			name:  "characteristic test",
			input: "makes a Might test",
			want:  `makes a <span style="text-decoration:underline"><strong>Might test</strong></span>`,
		},
		{
			name:  "threshold spacing",
			input: "a < 2 slowed",
			want:  "A<2 slowed",
		},
		{
			name:  "whitespace collapsed",
			input: "  line one\n   line   two ",
			want:  "line one line two",
		},
		{
			name:  "plain text unchanged",
			input: "The ground shakes.",
			want:  "The ground shakes.",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, narrative.Enrich(tc.input))
		})
	}
}

func (s *NarrativeTestSuite) TestSummaryTable() {
	table := narrative.SummaryTable([]narrative.TierRow{
		{Marker: "1", Text: "3 damage"},
		{Marker: "é", Text: "5 damage; M < 1 slowed"},
	})

	s.Equal(`<table><tbody>`+
		`<tr><td data-colwidth="98"><p>11 or less</p></td><td><p>[[/damage 3]] damage</p></td></tr>`+
		`<tr><td data-colwidth="98"><p>12-16</p></td><td><p>[[/damage 5]] damage; M<1 slowed</p></td></tr>`+
		`</tbody></table>`, table)

	s.Empty(narrative.SummaryTable(nil))
}

func (s *NarrativeTestSuite) TestTierMarkers() {
	testCases := []struct {
		marker string
		tier   drawsteel.Tier
		label  string
	}{
		{marker: "1", tier: drawsteel.Tier1, label: "11 or less"},
		{marker: "á", tier: drawsteel.Tier1, label: "11 or less"},
		{marker: "2", tier: drawsteel.Tier2, label: "12-16"},
		{marker: "é", tier: drawsteel.Tier2, label: "12-16"},
		{marker: "3", tier: drawsteel.Tier3, label: "17+"},
		{marker: "í", tier: drawsteel.Tier3, label: "17+"},
	}

	for _, tc := range testCases {
		tier, ok := narrative.TierForMarker(tc.marker)
		s.True(ok, tc.marker)
		s.Equal(tc.tier, tier)
		s.Equal(tc.label, narrative.TierLabel(tc.marker))
	}

	_, ok := narrative.TierForMarker("4")
	s.False(ok)
	s.Equal("4", narrative.TierLabel("4"))
}

func (s *NarrativeTestSuite) TestFormatBlock() {
	testCases := []struct {
		name     string
		block    narrative.Block
		withCost bool
		want     string
	}{
		{
			name:  "effect prefix stripped",
			block: narrative.Block{Effect: "Effect: The target is slowed."},
			want:  "<p>The target is slowed.</p>",
		},
		{
			name:  "named block",
			block: narrative.Block{Name: "Trigger", Effect: "An enemy moves adjacent."},
			want:  "<p><strong>Trigger:</strong> An enemy moves adjacent.</p>",
		},
		{
			name:  "effect name is not a label",
			block: narrative.Block{Name: "Effect", Effect: "Push 2."},
			want:  "<p>Push 2.</p>",
		},
		{
			name:     "cost label",
			block:    narrative.Block{Effect: "The ability deals extra damage.", Cost: "2 Malice"},
			withCost: true,
			want:     "<p><strong>2 Malice:</strong> The ability deals extra damage.</p>",
		},
		{
			name:     "cost and name",
			block:    narrative.Block{Name: "Spite", Effect: "Slide 3.", Cost: "1 Malice"},
			withCost: true,
			want:     "<p><strong>Spite:</strong> <strong>1 Malice:</strong> Slide 3.</p>",
		},
		{
			name:  "cost ignored without flag",
			block: narrative.Block{Effect: "Slide 3.", Cost: "1 Malice"},
			want:  "<p>Slide 3.</p>",
		},
		{
			name:  "empty effect",
			block: narrative.Block{Name: "Nothing"},
			want:  "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, narrative.FormatBlock(tc.block, tc.withCost))
		})
	}
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, "<p>one</p><p>[[/damage 2]] damage</p>", narrative.Paragraphs([]string{"one", " ", "2 damage"}))
	assert.Empty(t, narrative.Paragraph("   "))
}

func TestEffectPrefix(t *testing.T) {
	assert.True(t, narrative.HasEffectPrefix("EFFECT: slide 1"))
	assert.False(t, narrative.HasEffectPrefix("Effects"))
	assert.Equal(t, "slide 1", narrative.StripEffectPrefix("effect:slide 1"))
	assert.Equal(t, "slide 1", narrative.StripEffectPrefix("slide 1"))
}
