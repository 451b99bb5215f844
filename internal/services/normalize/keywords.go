package normalize

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var keywordLinePattern = regexp.MustCompile(`(?i)^(.+?)\s+(Maneuver|Attack|Effect|Reaction|Action|Ability|Spell|Power)\.?$`)

// KeywordLine is a parsed "Area, Magic Maneuver" style line
type KeywordLine struct {
	Keywords   []string
	ActionType drawsteel.ActionType
}

// ParseKeywordLine reads a keyword line. ok is false when the line does not
// end in an action word.
func ParseKeywordLine(line string) (*KeywordLine, bool) {
	m := keywordLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, false
	}

	var keywords []string
	for _, kw := range strings.Split(m[1], ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return &KeywordLine{
		Keywords:   keywords,
		ActionType: actionWordType(m[2]),
	}, true
}

func actionWordType(word string) drawsteel.ActionType {
	switch strings.ToLower(word) {
	case "maneuver":
		return drawsteel.ActionManeuver
	case "reaction":
		return drawsteel.ActionTriggered
	case "action":
		return drawsteel.ActionMain
	}
	return drawsteel.ActionSpecial
}
