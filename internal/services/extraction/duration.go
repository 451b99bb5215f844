package extraction

import (
	"regexp"
	"sort"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

type durationPhrase struct {
	phrase   string
	duration drawsteel.Duration
	pattern  *regexp.Regexp
	removal  *regexp.Regexp
}

// durationPhrases is scanned in order; the first phrase present wins
var durationPhrases = buildDurationPhrases([]struct {
	phrase   string
	duration drawsteel.Duration
}{
	{"eot", drawsteel.DurationTurn},
	{"end of turn", drawsteel.DurationTurn},
	{"save", drawsteel.DurationSave},
	{"save ends", drawsteel.DurationSave},
	{"encounter", drawsteel.DurationEncounter},
	{"end of encounter", drawsteel.DurationEncounter},
	{"until the end of the encounter", drawsteel.DurationEncounter},
	{"until the encounter ends", drawsteel.DurationEncounter},
	{"respite", drawsteel.DurationRespite},
	{"next respite", drawsteel.DurationRespite},
})

func buildDurationPhrases(entries []struct {
	phrase   string
	duration drawsteel.Duration
}) []durationPhrase {
	out := make([]durationPhrase, 0, len(entries))
	for _, e := range entries {
		quoted := regexp.QuoteMeta(e.phrase)
		out = append(out, durationPhrase{
			phrase:   e.phrase,
			duration: e.duration,
			pattern:  regexp.MustCompile(`(?i)\b` + quoted + `\b`),
			removal:  regexp.MustCompile(`(?i)\(\s*` + quoted + `\s*\)|\b` + quoted + `\b`),
		})
	}
	return out
}

// LookupDuration returns the duration named by the first phrase found in text
func LookupDuration(text string) (drawsteel.Duration, bool) {
	for _, p := range durationPhrases {
		if p.pattern.MatchString(text) {
			return p.duration, true
		}
	}
	return "", false
}

// removeDuration replaces the longest phrase of the given duration present in
// text, together with enclosing parentheses, by a single space.
func removeDuration(text string, duration drawsteel.Duration) string {
	candidates := make([]durationPhrase, 0, 2)
	for _, p := range durationPhrases {
		if p.duration == duration {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].phrase) > len(candidates[j].phrase)
	})

	for _, p := range candidates {
		if loc := p.removal.FindStringIndex(text); loc != nil {
			return text[:loc[0]] + " " + text[loc[1]:]
		}
	}
	return text
}
