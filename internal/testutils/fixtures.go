package testutils

import (
	"time"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

// TestImportTime is the instant stamped on fixture monsters
var TestImportTime = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

// GoblinStinkerJSON is a statblock export with one trait, one tiered ability
// and one villain action
const GoblinStinkerJSON = `{
  "name": "Goblin Stinker",
  "level": 1,
  "ev": "3",
  "stamina": 10,
  "speed": 5,
  "size": "1S",
  "stability": 0,
  "free_strike": 1,
  "roles": ["Controller"],
  "ancestry": ["Goblin", "Humanoid"],
  "might": -2,
  "agility": 1,
  "reason": 0,
  "intuition": 0,
  "presence": 2,
  "with_captain": "+1 bonus to speed",
  "traits": [
    {"name": "Crafty", "effects": [{"effect": "The stinker doesn't provoke opportunity attacks by moving."}]}
  ],
  "abilities": [
    {
      "name": "Toxic Winds",
      "type": "Main action",
      "cost": "Signature Ability",
      "keywords": ["Area", "Magic"],
      "distance": "3 cube within 10",
      "target": "Each enemy in the area",
      "effects": [
        {"roll": "Power Roll + 2", "t1": "2 poison damage; slide 1", "t2": "4 poison damage; slide 2", "t3": "5 poison damage; slide 3"},
        {"name": "Effect", "effect": "Effect: The stinker can target allies."},
        {"effect": "The area is difficult terrain.", "cost": "2 Malice"}
      ]
    },
    {
      "name": "Swamp Gas",
      "type": "Main action",
      "cost": "Villain Action 1",
      "keywords": ["Area"],
      "distance": "2 burst",
      "target": "Each enemy in the area",
      "effects": [
        {"t1": "P < 0 the target is weakened (save ends)", "t2": "P < 1 the target is weakened (save ends)", "t3": "P < 2 the target is weakened (save ends)"}
      ]
    }
  ]
}`

// StrikeMaliceText is a malice block with a single tiered ability
const StrikeMaliceText = `Goblin Malice Features
a Strike 3 malice
Melee Attack.
1 3 damage
2 5 damage
3 7 damage
Effect: the target is slowed (save ends).`

// CreateTestMonster creates a stored monster with a single feature item
func CreateTestMonster(id, name string) *drawsteel.Monster {
	return &drawsteel.Monster{
		ID:      id,
		Name:    name,
		Level:   1,
		Stamina: 10,
		Speed:   5,
		Characteristics: drawsteel.Characteristics{
			Might:    2,
			Presence: 1,
		},
		Highest: drawsteel.CharacteristicMight,
		Items: []*drawsteel.Item{
			{
				Name: "Crafty",
				Type: drawsteel.ItemTypeFeature,
				Img:  drawsteel.ImgFeatureDefault,
				Feature: &drawsteel.Feature{
					DSID:        "crafty",
					Description: "<p>Sneaky.</p>",
				},
			},
		},
		ImportedAt: TestImportTime,
	}
}
