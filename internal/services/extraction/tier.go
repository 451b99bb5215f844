package extraction

import "github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"

// ParseTierText reads one tier chunk. Extractors run damage, then movement,
// then condition over a single working copy; each one consumes its match so
// later extractors and the narrative never see it again.
func ParseTierText(text string) drawsteel.ParsedTier {
	result := drawsteel.ParsedTier{
		DamageTypes: []string{},
	}

	working := text

	damage, working := ExtractDamage(working)
	if damage != nil {
		result.DamageValue = damage.Value
		result.DamageTypes = damage.Types
	}

	movement, working := ExtractMovement(working)
	if movement != nil {
		result.Movement = movement
	}

	if match := ExtractCondition(working); match != nil {
		result.Condition = match.Condition
		result.Potency = match.Potency
		result.Duration = match.Duration
		result.Narrative = match.Narrative
		return result
	}

	result.Narrative = TidyNarrative(working)
	return result
}
