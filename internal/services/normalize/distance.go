package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var numberPattern = regexp.MustCompile(`\d+`)

// NormalizeDistance classifies a distance descriptor such as "3 cube within 10".
// Unrecognized or empty text falls back to melee 1.
func NormalizeDistance(text string) drawsteel.Distance {
	lower := strings.ToLower(strings.TrimSpace(text))
	nums := numbers(lower)

	switch {
	case strings.Contains(lower, "burst"):
		return drawsteel.Distance{Type: drawsteel.DistanceBurst, Primary: nth(nums, 0, 1)}
	case strings.Contains(lower, "cube"):
		return drawsteel.Distance{
			Type:      drawsteel.DistanceCube,
			Primary:   nth(nums, 0, 1),
			Secondary: nth(nums, 1, 1),
		}
	case strings.Contains(lower, "line"):
		return drawsteel.Distance{
			Type:      drawsteel.DistanceLine,
			Primary:   nth(nums, 0, 1),
			Secondary: nth(nums, 1, 1),
			Tertiary:  nth(nums, 2, 1),
		}
	case strings.Contains(lower, "aura"):
		return drawsteel.Distance{Type: drawsteel.DistanceAura, Primary: nth(nums, 0, 1)}
	case strings.Contains(lower, "melee or ranged"):
		return drawsteel.Distance{Type: drawsteel.DistanceMeleeRanged, Primary: 1}
	case strings.Contains(lower, "ranged"):
		return drawsteel.Distance{Type: drawsteel.DistanceRanged, Primary: nth(nums, 0, 1)}
	case strings.Contains(lower, "melee"):
		return drawsteel.Distance{Type: drawsteel.DistanceMelee, Primary: 1}
	case strings.Contains(lower, "self"):
		return drawsteel.Distance{Type: drawsteel.DistanceSelf}
	case strings.Contains(lower, "special"):
		return drawsteel.Distance{Type: drawsteel.DistanceSpecial}
	}

	return drawsteel.Distance{Type: drawsteel.DistanceMelee, Primary: 1}
}

func numbers(text string) []int {
	var out []int
	for _, m := range numberPattern.FindAllString(text, -1) {
		if n, err := strconv.Atoi(m); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func nth(nums []int, i, fallback int) int {
	if i < len(nums) && nums[i] > 0 {
		return nums[i]
	}
	return fallback
}
