package drawsteel

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or a numeric string. Anything else decodes to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexInt(int(v))
		return nil
	}

	*f = 0
	return nil
}

// MonsterData is the raw JSON shape of an exported monster
type MonsterData struct {
	Name        string        `json:"name"`
	Level       FlexInt       `json:"level"`
	EV          FlexInt       `json:"ev"`
	Stamina     FlexInt       `json:"stamina"`
	Speed       FlexInt       `json:"speed"`
	Size        string        `json:"size"`
	Stability   FlexInt       `json:"stability"`
	FreeStrike  FlexInt       `json:"free_strike"`
	Roles       []string      `json:"roles"`
	Ancestry    []string      `json:"ancestry"`
	Might       FlexInt       `json:"might"`
	Agility     FlexInt       `json:"agility"`
	Reason      FlexInt       `json:"reason"`
	Intuition   FlexInt       `json:"intuition"`
	Presence    FlexInt       `json:"presence"`
	Traits      []TraitData   `json:"traits"`
	Abilities   []AbilityData `json:"abilities"`
	WithCaptain string        `json:"with_captain"`
}

// Characteristics returns the five scores of the raw monster
func (m *MonsterData) Characteristics() Characteristics {
	return Characteristics{
		Might:     int(m.Might),
		Agility:   int(m.Agility),
		Reason:    int(m.Reason),
		Intuition: int(m.Intuition),
		Presence:  int(m.Presence),
	}
}

// TraitData is a raw trait
type TraitData struct {
	Name    string              `json:"name"`
	Effects []AbilityEffectData `json:"effects"`
}

// AbilityData is a raw ability
type AbilityData struct {
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	Cost     string              `json:"cost"`
	Category string              `json:"category"`
	Distance string              `json:"distance"`
	Target   string              `json:"target"`
	Keywords []string            `json:"keywords"`
	Trigger  string              `json:"trigger"`
	Page     string              `json:"page"`
	Effects  []AbilityEffectData `json:"effects"`
}

// AbilityEffectData is one raw effect block: either a tiered power roll or a
// named narrative effect.
type AbilityEffectData struct {
	Name   string `json:"name"`
	Roll   string `json:"roll"`
	T1     string `json:"t1"`
	T2     string `json:"t2"`
	T3     string `json:"t3"`
	Effect string `json:"effect"`
	Cost   string `json:"cost"`
}

// IsTiered reports whether the block carries any tier text
func (e *AbilityEffectData) IsTiered() bool {
	return e.T1 != "" || e.T2 != "" || e.T3 != ""
}
