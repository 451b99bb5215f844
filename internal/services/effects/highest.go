package effects

import "github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"

// HighestCharacteristic returns the characteristic with the largest score.
// Ties go to whichever comes first in might, agility, reason, intuition, presence.
func HighestCharacteristic(scores drawsteel.Characteristics) drawsteel.Characteristic {
	best := drawsteel.CanonicalCharacteristics[0]
	bestScore := scores.Score(best)
	for _, ch := range drawsteel.CanonicalCharacteristics[1:] {
		if score := scores.Score(ch); score > bestScore {
			best, bestScore = ch, score
		}
	}
	return best
}
