// Package narrative renders statblock prose into the HTML fragments stored on
// abilities: inline roll references, emphasized tests and the tier summary table.
package narrative

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	damageMention    = regexp.MustCompile(`(?i)\b(\d+)\s*(?:([a-z]+)\s+)?damage\b`)
	testMention      = regexp.MustCompile(`(?i)\b(might|agility|reason|intuition|presence)\s+test\b`)
	thresholdMention = regexp.MustCompile(`(?i)\b([marip])\s*<\s*(\d+)`)
)

// Enrich collapses whitespace and rewrites damage mentions, characteristic
// tests and potency thresholds into their rich-text forms.
func Enrich(text string) string {
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))

	text = damageMention.ReplaceAllStringFunc(text, func(m string) string {
		sub := damageMention.FindStringSubmatch(m)
		damageType := strings.ToLower(sub[2])
		if damageType == "" || damageType == "damage" {
			return "[[/damage " + sub[1] + "]] damage"
		}
		return "[[/damage " + sub[1] + " " + damageType + "]] damage"
	})

	text = testMention.ReplaceAllStringFunc(text, func(m string) string {
		sub := testMention.FindStringSubmatch(m)
		return `<span style="text-decoration:underline"><strong>` + sub[1] + ` test</strong></span>`
	})

	return thresholdMention.ReplaceAllStringFunc(text, func(m string) string {
		sub := thresholdMention.FindStringSubmatch(m)
		return strings.ToUpper(sub[1]) + "<" + sub[2]
	})
}

// Paragraph wraps text in a <p> element. Blank text renders nothing.
func Paragraph(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return "<p>" + text + "</p>"
}

// Paragraphs renders each text as its own enriched paragraph
func Paragraphs(texts []string) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(Paragraph(Enrich(t)))
	}
	return b.String()
}

var tierMarkers = map[string]drawsteel.Tier{
	"1": drawsteel.Tier1, "á": drawsteel.Tier1,
	"2": drawsteel.Tier2, "é": drawsteel.Tier2,
	"3": drawsteel.Tier3, "í": drawsteel.Tier3,
}

var tierLabels = map[drawsteel.Tier]string{
	drawsteel.Tier1: "11 or less",
	drawsteel.Tier2: "12-16",
	drawsteel.Tier3: "17+",
}

// TierForMarker maps a tier row marker (1, 2, 3 or á, é, í) to its tier
func TierForMarker(marker string) (drawsteel.Tier, bool) {
	t, ok := tierMarkers[marker]
	return t, ok
}

// TierLabel is the roll range printed for a tier, e.g. "12-16".
// Unknown markers are returned unchanged.
func TierLabel(marker string) string {
	if t, ok := tierMarkers[marker]; ok {
		return tierLabels[t]
	}
	return marker
}

// TierRow is one row of a power roll as written in the statblock
type TierRow struct {
	Marker string
	Text   string
}

// SummaryTable renders tier rows as a two column table of roll range and
// enriched text. No rows render nothing.
func SummaryTable(rows []TierRow) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table><tbody>")
	for _, row := range rows {
		b.WriteString(`<tr><td data-colwidth="98"><p>`)
		b.WriteString(TierLabel(row.Marker))
		b.WriteString("</p></td><td><p>")
		b.WriteString(Enrich(row.Text))
		b.WriteString("</p></td></tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
