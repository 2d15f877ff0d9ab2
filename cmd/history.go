package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/ftlint/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent check results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunHistory(cmd.OutOrStdout(), cfg.Database, historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Rows to show, 0 for all")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, dbPath string, limit int) error {
	sqlDB, store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runs, err := store.Runs(limit)
	if err != nil {
		return err
	}

	pathWidth := 0
	for _, r := range runs {
		pathWidth = max(pathWidth, len(r.FilePath))
	}
	for _, r := range runs {
		ui.HistoryRow(w, r.RunID, r.CreatedAt, r.FilePath, r.TotalErrors, pathWidth)
	}
	return nil
}
