package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/ftlint/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the persisted spell cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show spell cache and history counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunCacheStats(cmd.OutOrStdout(), cfg.Database)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every cached spelling result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunCacheClear(cmd.OutOrStdout(), cfg.Database)
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func RunCacheStats(w io.Writer, dbPath string) error {
	sqlDB, store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	st, err := store.Stats()
	if err != nil {
		return err
	}
	ui.StatLine(w, "Cached words", st.CachedWords)
	ui.StatLine(w, "Misspelled", st.Misspelled)
	ui.StatLine(w, "Custom words", st.CustomWords)
	ui.StatLine(w, "Runs", st.Runs)
	return nil
}

func RunCacheClear(w io.Writer, dbPath string) error {
	sqlDB, store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	n, err := store.ClearSpellCache()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "cleared %d cached words\n", n)
	return nil
}
