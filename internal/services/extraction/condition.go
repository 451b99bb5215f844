package extraction

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var (
	narrativePunctuation = regexp.MustCompile(`[.;,()]`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
	leadingSubject       = regexp.MustCompile(`(?i)^(?:the\s+|each\s+)?(?:target|targets|creature|creatures)\s+(?:is|are)\b`)
	edgeConnective       = regexp.MustCompile(`(?i)^(?:and|or|is|are)\b|\b(?:and|or|is|are)$`)
	edgeConjunction      = regexp.MustCompile(`(?i)^(?:and|or)\b|\b(?:and|or)$`)
	conditionPatterns    = buildConditionPatterns()
)

func buildConditionPatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(drawsteel.DefaultConditions))
	for _, name := range drawsteel.DefaultConditions {
		out[name] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
	}
	return out
}

// ConditionMatch is the result of condition extraction on one text chunk
type ConditionMatch struct {
	Condition string
	Potency   *drawsteel.PotencyTrigger
	Duration  drawsteel.Duration
	Narrative string
}

// ExtractCondition looks for a built-in condition in text. The first
// vocabulary entry contained in the text wins, regardless of position.
// Returns nil when no condition is present.
func ExtractCondition(text string) *ConditionMatch {
	lower := strings.ToLower(text)

	condition := ""
	for _, name := range drawsteel.DefaultConditions {
		if strings.Contains(lower, name) {
			condition = name
			break
		}
	}
	if condition == "" {
		return nil
	}

	potency, rest := ExtractPotency(text)

	duration, found := LookupDuration(rest)
	if found {
		rest = removeDuration(rest, duration)
	} else {
		duration = drawsteel.DurationSave
	}

	if loc := conditionPatterns[condition].FindStringIndex(rest); loc != nil {
		rest = cut(rest, loc[0], loc[1])
	}

	return &ConditionMatch{
		Condition: condition,
		Potency:   potency,
		Duration:  duration,
		Narrative: cleanConditionNarrative(rest),
	}
}

// cleanConditionNarrative strips punctuation and the sentence scaffolding left
// behind once the condition, potency and duration are removed.
func cleanConditionNarrative(text string) string {
	text = collapse(narrativePunctuation.ReplaceAllString(text, " "))
	for {
		next := collapse(leadingSubject.ReplaceAllString(text, ""))
		next = collapse(edgeConnective.ReplaceAllString(next, ""))
		if next == text {
			return text
		}
		text = next
	}
}

// TidyNarrative strips sentence punctuation and dangling conjunctions from
// residual text
func TidyNarrative(text string) string {
	text = collapse(strings.NewReplacer(".", "", ";", "").Replace(text))
	for {
		next := collapse(edgeConjunction.ReplaceAllString(text, ""))
		if next == text {
			return text
		}
		text = next
	}
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
