package normalize

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// suggestThreshold is the minimum Jaro-Winkler score for a suggestion
const suggestThreshold = 0.85

// Suggest returns the candidate closest to query, compared case-insensitively.
// ok is false when nothing scores at least 0.85.
func Suggest(query string, candidates []string) (best string, ok bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	bestScore := 0.0
	for _, c := range candidates {
		score := matchr.JaroWinkler(q, strings.ToLower(c), false)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
