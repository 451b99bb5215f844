package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/power"
	"github.com/KirkDiggler/statblock-importer/internal/services/normalize"
)

var rollCmd = &cobra.Command{
	Use:   "roll <file> <ability>",
	Short: "Roll an ability's power roll from a statblock export",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path, abilityName := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	imported, err := a.importer.ImportMonster(ctx, &importer.ImportMonsterInput{
		Data:   data,
		Source: path,
		DryRun: true,
	})
	if err != nil {
		return err
	}

	m := imported.Monster
	item := m.FindAbility(abilityName)
	if item == nil || item.Ability == nil {
		if suggestion, ok := normalize.Suggest(abilityName, m.AbilityNames()); ok {
			return errors.NotFoundf("ability %q not found on %s, did you mean %q?", abilityName, m.Name, suggestion).
				WithMeta(errors.MetaSuggestion, suggestion)
		}
		return errors.NotFoundf("ability %q not found on %s", abilityName, m.Name)
	}

	score := 0
	if chars := item.Ability.PowerRoll.Characteristics; len(chars) > 0 {
		score = m.Characteristics.Score(chars[0])
	}

	out, err := a.power.Roll(ctx, &power.RollInput{
		Ability:             item.Ability,
		CharacteristicScore: score,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), struct {
		Monster string             `json:"monster"`
		Ability string             `json:"ability"`
		Dice    []int              `json:"dice"`
		Total   int                `json:"total"`
		Tier    string             `json:"tier"`
		Effects []power.TierEffect `json:"effects"`
	}{
		Monster: m.Name,
		Ability: item.Name,
		Dice:    out.Dice,
		Total:   out.Total,
		Tier:    string(out.Tier),
		Effects: out.Effects,
	})
}
