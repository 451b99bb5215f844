package drawsteel

import (
	"strings"
	"time"
)

// Movement is a forced movement extracted from tier text
type Movement struct {
	Verb     MovementVerb `json:"verb"`
	Distance int          `json:"distance"`
}

// PotencyTrigger is a characteristic threshold clause such as "A < 2"
type PotencyTrigger struct {
	Characteristic Characteristic `json:"characteristic"`
	Threshold      int            `json:"threshold"`
}

// ParsedTier is the structured reading of one tier text chunk
type ParsedTier struct {
	DamageValue int             `json:"damage_value"`
	DamageTypes []string        `json:"damage_types"`
	Movement    *Movement       `json:"movement,omitempty"`
	Condition   string          `json:"condition,omitempty"`
	Potency     *PotencyTrigger `json:"potency,omitempty"`
	Duration    Duration        `json:"duration,omitempty"` // empty unless Condition is set
	Narrative   string          `json:"narrative"`
}

// Potency is the potency formula and characteristic stored on a tier payload
type Potency struct {
	Value          string `json:"value"`
	Characteristic string `json:"characteristic"`
}

// DamageTier is the damage payload of one tier
type DamageTier struct {
	Value      string   `json:"value"`
	Types      []string `json:"types"`
	Properties []string `json:"properties"`
	Potency    Potency  `json:"potency"`
}

// ConditionEffect is a condition applied on a failed potency check
type ConditionEffect struct {
	Condition  string   `json:"condition"`
	End        Duration `json:"end"`
	Properties []string `json:"properties"`
}

// AppliedTier is the applied-condition payload of one tier.
// Only tier1 carries a Display value.
type AppliedTier struct {
	Display string                     `json:"display"`
	Potency Potency                    `json:"potency"`
	Effects map[string]ConditionEffect `json:"effects"`
}

// ForcedTier is the forced-movement payload of one tier
type ForcedTier struct {
	Movement   []string `json:"movement"`
	Distance   string   `json:"distance"`
	Display    string   `json:"display"`
	Properties []string `json:"properties"`
	Potency    Potency  `json:"potency"`
}

// SpecialTier is the narrative payload of one tier
type SpecialTier struct {
	Display string  `json:"display"`
	Potency Potency `json:"potency"`
}

// EffectEntry groups same-kind fragments across the three tiers.
// Only the map matching Type is populated.
type EffectEntry struct {
	ID      string                `json:"_id"`
	Type    EffectKind            `json:"type"`
	Name    string                `json:"name"`
	Damage  map[Tier]*DamageTier  `json:"damage,omitempty"`
	Applied map[Tier]*AppliedTier `json:"applied,omitempty"`
	Forced  map[Tier]*ForcedTier  `json:"forced,omitempty"`
	Special map[Tier]*SpecialTier `json:"special,omitempty"`
}

// HasTier reports whether the entry carries a payload for the tier
func (e *EffectEntry) HasTier(tier Tier) bool {
	switch e.Type {
	case EffectKindDamage:
		return e.Damage[tier] != nil
	case EffectKindApplied:
		return e.Applied[tier] != nil
	case EffectKindForced:
		return e.Forced[tier] != nil
	case EffectKindSpecial:
		return e.Special[tier] != nil
	}
	return false
}

// Distance is a normalized range descriptor
type Distance struct {
	Type      DistanceType `json:"type"`
	Primary   int          `json:"primary,omitempty"`
	Secondary int          `json:"secondary,omitempty"`
	Tertiary  int          `json:"tertiary,omitempty"`
}

// Target is a normalized target descriptor. Value is nil when unbounded.
type Target struct {
	Type  TargetType `json:"type"`
	Value *int       `json:"value"`
}

// PowerRoll is the roll formula of an ability
type PowerRoll struct {
	Formula         string           `json:"formula"`
	Characteristics []Characteristic `json:"characteristics"`
}

// Source records where imported content came from
type Source struct {
	Book     string `json:"book"`
	Page     string `json:"page"`
	License  string `json:"license"`
	Revision int    `json:"revision"`
}

// Ability is the assembled record of one monster ability
type Ability struct {
	DSID          string                  `json:"_dsid"`
	ActionType    ActionType              `json:"type"`
	Category      string                  `json:"category"`
	Keywords      []string                `json:"keywords"`
	Distance      Distance                `json:"distance"`
	Target        Target                  `json:"target"`
	DamageDisplay string                  `json:"damageDisplay"`
	PowerRoll     PowerRoll               `json:"power_roll"`
	Effects       map[string]*EffectEntry `json:"effects"`
	EffectOrder   []string                `json:"effect_order,omitempty"`
	Before        string                  `json:"before"`
	After         string                  `json:"after"`
	Resource      *int                    `json:"resource"`
	Trigger       string                  `json:"trigger"`
	Source        Source                  `json:"source"`
	Story         string                  `json:"story"`
}

// OrderedEffects returns the effect entries in discovery order
func (a *Ability) OrderedEffects() []*EffectEntry {
	out := make([]*EffectEntry, 0, len(a.Effects))
	for _, id := range a.EffectOrder {
		if e, ok := a.Effects[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Feature is the assembled record of a trait or flag feature
type Feature struct {
	DSID        string `json:"_dsid"`
	Description string `json:"description"`
	Source      Source `json:"source"`
}

// StatusEffectEnd describes when a status effect ends
type StatusEffectEnd struct {
	Type string `json:"type"`
	Roll string `json:"roll"`
}

// StatusEffect is a condition status attached to an item
type StatusEffect struct {
	Name     string          `json:"name"`
	Img      string          `json:"img"`
	Statuses []string        `json:"statuses"`
	End      StatusEffectEnd `json:"end"`
	Rounds   *int            `json:"rounds"`
}

// Item is a normalized trait or ability handed to the host
type Item struct {
	Name    string          `json:"name"`
	Type    ItemType        `json:"type"`
	Img     string          `json:"img"`
	Sort    int             `json:"sort"`
	Ability *Ability        `json:"ability,omitempty"`
	Feature *Feature        `json:"feature,omitempty"`
	Effects []*StatusEffect `json:"effects,omitempty"`
}

// Characteristics holds the five characteristic scores
type Characteristics struct {
	Might     int `json:"might"`
	Agility   int `json:"agility"`
	Reason    int `json:"reason"`
	Intuition int `json:"intuition"`
	Presence  int `json:"presence"`
}

// Score returns the score of a characteristic, zero for none
func (c Characteristics) Score(ch Characteristic) int {
	switch ch {
	case CharacteristicMight:
		return c.Might
	case CharacteristicAgility:
		return c.Agility
	case CharacteristicReason:
		return c.Reason
	case CharacteristicIntuition:
		return c.Intuition
	case CharacteristicPresence:
		return c.Presence
	}
	return 0
}

// Monster is an imported creature with its normalized items
type Monster struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Level           int             `json:"level"`
	EV              int             `json:"ev"`
	Stamina         int             `json:"stamina"`
	Speed           int             `json:"speed"`
	Size            string          `json:"size"`
	Stability       int             `json:"stability"`
	FreeStrike      int             `json:"free_strike"`
	Roles           []string        `json:"roles,omitempty"`
	Keywords        []string        `json:"keywords,omitempty"`
	Characteristics Characteristics `json:"characteristics"`
	Highest         Characteristic  `json:"highest_characteristic"`
	Items           []*Item         `json:"items"`
	SourceFile      string          `json:"source_file,omitempty"`
	ImportedAt      time.Time       `json:"imported_at"`
}

// FindAbility returns the first ability item with the given name (case-insensitive)
func (m *Monster) FindAbility(name string) *Item {
	for _, item := range m.Items {
		if item.Type == ItemTypeAbility && strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// AbilityNames lists the names of the monster's ability items in item order
func (m *Monster) AbilityNames() []string {
	var names []string
	for _, item := range m.Items {
		if item.Type == ItemTypeAbility {
			names = append(names, item.Name)
		}
	}
	return names
}
