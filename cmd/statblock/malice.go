package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
)

var maliceCharacteristic string

var maliceCmd = &cobra.Command{
	Use:   "malice [file]",
	Short: "Parse malice feature prose into ability items",
	Long:  `Parse copied malice feature text. Reads standard input when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMalice,
}

func init() {
	maliceCmd.Flags().StringVar(&maliceCharacteristic, "characteristic", string(drawsteel.CharacteristicMight),
		"highest characteristic of the monster (might, agility, reason, intuition, presence)")
}

func runMalice(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.importer.ParseMaliceText(ctx, &importer.ParseMaliceTextInput{
		Text:    text,
		Highest: drawsteel.Characteristic(maliceCharacteristic),
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), struct {
		TypeKey string            `json:"type_key,omitempty"`
		Items   []*drawsteel.Item `json:"items"`
	}{TypeKey: out.TypeKey, Items: out.Items})
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read standard input")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", args[0])
	}
	return string(data), nil
}
