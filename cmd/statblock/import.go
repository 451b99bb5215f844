package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
)

var (
	importWorkers int
	importStore   bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import statblock export files",
	Long: `Import one or more statblock JSON exports and print the resulting monster
documents. Files are processed concurrently; a bad file does not stop the rest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "concurrent imports (defaults to STATBLOCK_WORKERS)")
	importCmd.Flags().BoolVar(&importStore, "store", false, "save imported monsters to the configured repository")
}

type importReport struct {
	File    string `json:"file"`
	Monster any    `json:"monster,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	files := make([]importer.BatchFile, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		files = append(files, importer.BatchFile{Name: filepath.Base(path), Data: data})
	}

	workers := importWorkers
	if workers <= 0 {
		workers = a.cfg.Workers
	}

	out, err := a.importer.ImportBatch(ctx, &importer.ImportBatchInput{
		Files:   files,
		Workers: workers,
		DryRun:  !importStore,
	})
	if err != nil {
		return err
	}

	reports := make([]importReport, len(out.Results))
	for i, r := range out.Results {
		reports[i] = importReport{File: r.File}
		if r.Err != nil {
			reports[i].Error = r.Err.Error()
			continue
		}
		reports[i].Monster = r.Monster
	}

	if err := writeJSON(cmd.OutOrStdout(), reports); err != nil {
		return err
	}

	if out.Failed > 0 {
		return errors.InvalidArgumentf("%d of %d files failed to import", out.Failed, len(files))
	}
	return nil
}
