package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var actionTypes = map[string]drawsteel.ActionType{
	"main action":           drawsteel.ActionMain,
	"maneuver":              drawsteel.ActionManeuver,
	"free maneuver":         drawsteel.ActionFreeManeuver,
	"triggered action":      drawsteel.ActionTriggered,
	"free triggered action": drawsteel.ActionFreeTriggered,
	"no action":             drawsteel.ActionNone,
}

// NormalizeActionType maps an ability's action text to an action type.
// Villain actions are recognized from the cost text; everything else is main.
func NormalizeActionType(actionText, cost string) drawsteel.ActionType {
	if t, ok := actionTypes[strings.ToLower(strings.TrimSpace(actionText))]; ok {
		return t
	}
	if strings.Contains(strings.ToLower(cost), "villain action") {
		return drawsteel.ActionVillain
	}
	return drawsteel.ActionMain
}

// DetermineCategory derives the ability category from its cost text, falling
// back to an explicit category.
func DetermineCategory(cost, category string) string {
	lower := strings.ToLower(cost)
	switch {
	case strings.Contains(lower, "signature"):
		return drawsteel.CategorySignature
	case strings.Contains(lower, "malice"):
		return drawsteel.CategoryHeroic
	case strings.Contains(lower, "villain"):
		return drawsteel.CategoryVillain
	}
	return strings.ToLower(strings.TrimSpace(category))
}

var malicePattern = regexp.MustCompile(`(?i)(\d+)\s*malice`)

// MaliceCost returns N for cost text like "3 Malice"
func MaliceCost(cost string) (int, bool) {
	m := malicePattern.FindStringSubmatch(cost)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// DSID builds the lower-kebab identifier used for items
func DSID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// AbilityImage picks the item image for an action type
func AbilityImage(actionType drawsteel.ActionType) string {
	switch actionType {
	case drawsteel.ActionMain:
		return drawsteel.ImgAbilityMain
	case drawsteel.ActionManeuver, drawsteel.ActionFreeManeuver:
		return drawsteel.ImgAbilityManeuver
	case drawsteel.ActionTriggered, drawsteel.ActionFreeTriggered:
		return drawsteel.ImgAbilityTriggered
	case drawsteel.ActionVillain:
		return drawsteel.ImgAbilityVillain
	case drawsteel.ActionNone, drawsteel.ActionSpecial:
		return drawsteel.ImgAbilityMalice
	}
	return ""
}
