package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

var potencyPattern = regexp.MustCompile(`(?i)\b([marip])\s*<\s*(\d+)`)

var characteristicLetters = map[string]drawsteel.Characteristic{
	"m": drawsteel.CharacteristicMight,
	"a": drawsteel.CharacteristicAgility,
	"r": drawsteel.CharacteristicReason,
	"i": drawsteel.CharacteristicIntuition,
	"p": drawsteel.CharacteristicPresence,
}

// MapCharacteristic maps a potency letter to its characteristic.
// Any letter outside m/a/r/i/p maps to none.
func MapCharacteristic(letter string) drawsteel.Characteristic {
	if c, ok := characteristicLetters[strings.ToLower(strings.TrimSpace(letter))]; ok {
		return c
	}
	return drawsteel.CharacteristicNone
}

// ExtractPotency finds the first "<letter> < N" clause and removes it from text
func ExtractPotency(text string) (*drawsteel.PotencyTrigger, string) {
	loc := potencyPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, text
	}

	threshold, err := strconv.Atoi(text[loc[4]:loc[5]])
	if err != nil {
		return nil, text
	}

	return &drawsteel.PotencyTrigger{
		Characteristic: MapCharacteristic(text[loc[2]:loc[3]]),
		Threshold:      threshold,
	}, cut(text, loc[0], loc[1])
}
