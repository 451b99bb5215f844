// Package normalize classifies free-text ability descriptors (target,
// distance, action type, category, keywords) into normalized values.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var numberWords = []struct {
	word  string
	value int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
}

var (
	numberWordPatterns = buildWordPatterns()
	digitPattern       = regexp.MustCompile(`\b(\d+)\b`)
	unboundedPattern   = regexp.MustCompile(`\b(?:all|each|every)\b`)
)

// Compound phrases come before their parts so "self or ally" is not read as "ally"
var targetPhrases = []struct {
	pattern *regexp.Regexp
	target  drawsteel.TargetType
}{
	{regexp.MustCompile(`\bcreatures? or objects?\b`), drawsteel.TargetCreatureObject},
	{regexp.MustCompile(`\bself or (?:one )?ally\b`), drawsteel.TargetSelfOrAlly},
	{regexp.MustCompile(`\bself or (?:one )?creature\b`), drawsteel.TargetSelfOrCreature},
	{regexp.MustCompile(`\bself (?:and )?(?:all )?all(?:y|ies)\b`), drawsteel.TargetSelfAlly},
	{regexp.MustCompile(`\bcreatures?\b`), drawsteel.TargetCreature},
	{regexp.MustCompile(`\bobjects?\b`), drawsteel.TargetObject},
	{regexp.MustCompile(`\benem(?:y|ies)\b`), drawsteel.TargetEnemy},
	{regexp.MustCompile(`\ball(?:y|ies)\b`), drawsteel.TargetAlly},
	{regexp.MustCompile(`\bself\b`), drawsteel.TargetSelf},
}

func buildWordPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(numberWords))
	for i, nw := range numberWords {
		out[i] = regexp.MustCompile(`\b` + nw.word + `\b`)
	}
	return out
}

// ParseTarget classifies a target descriptor such as "Two creatures or objects".
// Empty text yields a special target with no count.
func ParseTarget(text string) drawsteel.Target {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return drawsteel.Target{Type: drawsteel.TargetSpecial}
	}

	var value *int
	for i, p := range numberWordPatterns {
		if p.MatchString(lower) {
			v := numberWords[i].value
			value = &v
			break
		}
	}
	if value == nil {
		if m := digitPattern.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				value = &v
			}
		}
	}
	if unboundedPattern.MatchString(lower) {
		value = nil
	}

	targetType := drawsteel.TargetSpecial
	for _, tp := range targetPhrases {
		if tp.pattern.MatchString(lower) {
			targetType = tp.target
			break
		}
	}

	return drawsteel.Target{Type: targetType, Value: value}
}
