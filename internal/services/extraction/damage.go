// Package extraction pulls structured damage, forced movement and condition
// data out of free-form power roll tier text.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var damagePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:([a-z]+)\s+)?damage`)

// Damage is a damage value with its optional damage type
type Damage struct {
	Value int
	Types []string
}

// ExtractDamage finds the first "<N> [type] damage" mention in text.
// It returns nil and the unchanged text when nothing matches; otherwise the
// returned text has the matched span removed.
func ExtractDamage(text string) (*Damage, string) {
	loc := damagePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, text
	}

	value, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return nil, text
	}

	types := []string{}
	if loc[4] >= 0 {
		damageType := strings.ToLower(text[loc[4]:loc[5]])
		if damageType != "damage" {
			types = append(types, damageType)
		}
	}

	return &Damage{Value: value, Types: types}, cut(text, loc[0], loc[1])
}

// cut removes text[start:end]
func cut(text string, start, end int) string {
	return text[:start] + text[end:]
}
