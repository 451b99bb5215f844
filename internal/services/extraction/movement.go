package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var movementPattern = regexp.MustCompile(`(?i)\b(slide|pull|push|shift)\s*(\d+)`)

// ExtractMovement finds the first forced movement verb followed by a distance.
// The returned text has the matched span removed. Distances are never scaled here.
func ExtractMovement(text string) (*drawsteel.Movement, string) {
	loc := movementPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, text
	}

	distance, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil || distance <= 0 {
		return nil, text
	}

	return &drawsteel.Movement{
		Verb:     drawsteel.MovementVerb(strings.ToLower(text[loc[2]:loc[3]])),
		Distance: distance,
	}, cut(text, loc[0], loc[1])
}
