// Package effects groups the per-tier fragments of a power roll into typed
// effect entries.
package effects

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-importer/internal/services/extraction"
)

const (
	specialName          = "Special"
	specialDiscriminator = "narrative"
	untypedDamage        = "untyped"
)

var durationSuffixes = map[drawsteel.Duration]string{
	drawsteel.DurationSave:      "(save ends)",
	drawsteel.DurationTurn:      "(EoT)",
	drawsteel.DurationEncounter: "(end of encounter)",
	drawsteel.DurationRespite:   "(next respite)",
}

// Config holds the builder's dependencies
type Config struct {
	IDGenerator idgen.Generator
}

// Builder turns tier texts into effect entries
type Builder struct {
	idGen idgen.Generator
}

// NewBuilder creates a builder. A nil config or generator uses random
// 16 character ids.
func NewBuilder(cfg *Config) *Builder {
	b := &Builder{idGen: idgen.NewFoundry()}
	if cfg != nil && cfg.IDGenerator != nil {
		b.idGen = cfg.IDGenerator
	}
	return b
}

// BuildInput is the three tier texts of one power roll
type BuildInput struct {
	Tiers   [3]string
	Highest drawsteel.Characteristic
}

// BuildOutput holds the grouped entries. Order lists entry ids in the order
// they were first seen. Notes is leftover narrative from damage and forced
// movement chunks, meant for the owning ability's trailing text.
type BuildOutput struct {
	Effects map[string]*drawsteel.EffectEntry
	Order   []string
	Notes   []string
}

// Build splits each tier on semicolons, parses every chunk and upserts the
// result into the entry for its kind and discriminator.
func (b *Builder) Build(input *BuildInput) *BuildOutput {
	out := &BuildOutput{Effects: make(map[string]*drawsteel.EffectEntry)}
	if input == nil {
		return out
	}

	groups := make(map[string]*drawsteel.EffectEntry)
	highest := string(input.Highest)

	for i, tierText := range input.Tiers {
		tier := drawsteel.Tiers[i]
		for _, chunk := range strings.Split(tierText, ";") {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}

			parsed := extraction.ParseTierText(chunk)
			kind, ok := Classify(parsed)
			if !ok {
				continue
			}

			key := string(kind) + "-" + discriminator(kind, parsed)
			entry, exists := groups[key]
			if !exists {
				entry = b.newEntry(kind, parsed)
				groups[key] = entry
				out.Effects[entry.ID] = entry
				out.Order = append(out.Order, entry.ID)
			}

			switch kind {
			case drawsteel.EffectKindDamage:
				entry.Damage[tier] = damageTier(i, parsed, highest)
				if note := damageNote(chunk); note != "" {
					out.Notes = append(out.Notes, note)
				}
			case drawsteel.EffectKindApplied:
				entry.Applied[tier] = appliedTier(i, parsed, highest)
			case drawsteel.EffectKindForced:
				entry.Forced[tier] = forcedTier(i, parsed, highest)
				if parsed.Narrative != "" {
					out.Notes = append(out.Notes, parsed.Narrative)
				}
			case drawsteel.EffectKindSpecial:
				entry.Special[tier] = &drawsteel.SpecialTier{
					Display: parsed.Narrative,
					Potency: potency(i, highest),
				}
			}
		}
	}

	return out
}

// Classify picks the single kind of a parsed chunk: damage, then applied
// condition, then forced movement, then narrative. ok is false for an empty chunk.
func Classify(parsed drawsteel.ParsedTier) (drawsteel.EffectKind, bool) {
	switch {
	case parsed.DamageValue > 0:
		return drawsteel.EffectKindDamage, true
	case parsed.Condition != "":
		return drawsteel.EffectKindApplied, true
	case parsed.Movement != nil:
		return drawsteel.EffectKindForced, true
	case parsed.Narrative != "":
		return drawsteel.EffectKindSpecial, true
	}
	return "", false
}

func discriminator(kind drawsteel.EffectKind, parsed drawsteel.ParsedTier) string {
	switch kind {
	case drawsteel.EffectKindDamage:
		if len(parsed.DamageTypes) > 0 {
			return parsed.DamageTypes[0]
		}
		return untypedDamage
	case drawsteel.EffectKindApplied:
		return parsed.Condition
	case drawsteel.EffectKindForced:
		return string(parsed.Movement.Verb)
	}
	return specialDiscriminator
}

func (b *Builder) newEntry(kind drawsteel.EffectKind, parsed drawsteel.ParsedTier) *drawsteel.EffectEntry {
	entry := &drawsteel.EffectEntry{
		ID:   b.idGen.Generate(),
		Type: kind,
	}

	switch kind {
	case drawsteel.EffectKindDamage:
		entry.Damage = make(map[drawsteel.Tier]*drawsteel.DamageTier)
	case drawsteel.EffectKindApplied:
		entry.Name = DisplayName(parsed.Condition)
		entry.Applied = make(map[drawsteel.Tier]*drawsteel.AppliedTier)
	case drawsteel.EffectKindForced:
		entry.Name = string(parsed.Movement.Verb)
		entry.Forced = make(map[drawsteel.Tier]*drawsteel.ForcedTier)
	case drawsteel.EffectKindSpecial:
		entry.Name = specialName
		entry.Special = make(map[drawsteel.Tier]*drawsteel.SpecialTier)
	}

	return entry
}

func potency(index int, characteristic string) drawsteel.Potency {
	return drawsteel.Potency{
		Value:          drawsteel.PotencyValues[index],
		Characteristic: characteristic,
	}
}

func damageTier(index int, parsed drawsteel.ParsedTier, highest string) *drawsteel.DamageTier {
	characteristic := highest
	if index == 0 {
		characteristic = string(drawsteel.CharacteristicNone)
	}

	types := make([]string, len(parsed.DamageTypes))
	copy(types, parsed.DamageTypes)

	return &drawsteel.DamageTier{
		Value:      strconv.Itoa(parsed.DamageValue),
		Types:      types,
		Properties: []string{},
		Potency:    potency(index, characteristic),
	}
}

func appliedTier(index int, parsed drawsteel.ParsedTier, highest string) *drawsteel.AppliedTier {
	characteristic := highest
	if parsed.Potency != nil {
		characteristic = string(parsed.Potency.Characteristic)
	}

	display := ""
	if index == 0 {
		display = AppliedDisplay(parsed)
	}

	return &drawsteel.AppliedTier{
		Display: display,
		Potency: potency(index, characteristic),
		Effects: map[string]drawsteel.ConditionEffect{
			parsed.Condition: {
				Condition:  "failure",
				End:        parsed.Duration,
				Properties: []string{},
			},
		},
	}
}

func forcedTier(index int, parsed drawsteel.ParsedTier, highest string) *drawsteel.ForcedTier {
	return &drawsteel.ForcedTier{
		Movement:   []string{string(parsed.Movement.Verb)},
		Distance:   strconv.Itoa(parsed.Movement.Distance),
		Display:    drawsteel.DisplayForced,
		Properties: []string{},
		Potency:    potency(index, highest),
	}
}

// AppliedDisplay renders the summary text of an applied condition, e.g.
// "{{potency}} grabbed (save ends)".
func AppliedDisplay(parsed drawsteel.ParsedTier) string {
	parts := []string{drawsteel.DisplayPotency, parsed.Condition}
	if parsed.Narrative != "" {
		parts = append(parts, parsed.Narrative)
	}
	if suffix, ok := durationSuffixes[parsed.Duration]; ok {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

// DisplayName title-cases a condition name
func DisplayName(condition string) string {
	return cases.Title(language.English).String(condition)
}

// damageNote is whatever a damage chunk says besides the damage itself
func damageNote(chunk string) string {
	_, rest := extraction.ExtractDamage(chunk)
	return strings.Trim(extraction.TidyNarrative(rest), ", ")
}
