package segmenter

import (
	"regexp"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
)

// SaveRoll is the roll a creature makes to end a save-ends status
const SaveRoll = "1d10 + @combat.save.bonus"

// Status end types
const (
	EndSave      = "save"
	EndRound     = "round"
	EndTurn      = "turn"
	EndEncounter = "encounter"
)

var (
	saveEnds       = regexp.MustCompile(`(?i)\(save ends\)`)
	endOfRound     = regexp.MustCompile(`(?i)until the end of the round`)
	endOfTurn      = regexp.MustCompile(`(?i)until the end of the turn|\(eot\)`)
	endOfEncounter = regexp.MustCompile(`(?i)until the end of the encounter|until .* disappears`)
)

// StatusEffect builds the status for a condition, reading its end from text.
// Text without a recognized end lasts until the end of the turn.
func StatusEffect(condition, text string) *drawsteel.StatusEffect {
	status := &drawsteel.StatusEffect{
		Name:     effects.DisplayName(condition),
		Img:      drawsteel.ImgStatusEffect,
		Statuses: []string{condition},
	}

	oneRound := func() *int {
		n := 1
		return &n
	}

	switch {
	case saveEnds.MatchString(text):
		status.End = drawsteel.StatusEffectEnd{Type: EndSave, Roll: SaveRoll}
	case endOfRound.MatchString(text):
		status.End = drawsteel.StatusEffectEnd{Type: EndRound}
		status.Rounds = oneRound()
	case endOfTurn.MatchString(text):
		status.End = drawsteel.StatusEffectEnd{Type: EndTurn}
		status.Rounds = oneRound()
	case endOfEncounter.MatchString(text):
		status.End = drawsteel.StatusEffectEnd{Type: EndEncounter}
	default:
		status.End = drawsteel.StatusEffectEnd{Type: EndTurn}
		status.Rounds = oneRound()
	}

	return status
}
