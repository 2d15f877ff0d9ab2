package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the custom dictionary",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the custom dictionary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunWordsAdd(cmd.OutOrStdout(), cfg.Database, args)
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add every line of a file to the custom dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunWordsImport(cmd.OutOrStdout(), cfg.Database, args[0])
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the custom dictionary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunWordsList(cmd.OutOrStdout(), cfg.Database)
	},
}

func init() {
	wordsCmd.AddCommand(wordsAddCmd, wordsImportCmd, wordsListCmd)
	rootCmd.AddCommand(wordsCmd)
}

func RunWordsAdd(w io.Writer, dbPath string, words []string) error {
	sqlDB, store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	added, err := store.AddCustomWords(words...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "added %d of %d words\n", added, len(words))
	return nil
}

// RunWordsImport reads one word per line; blank lines are skipped.
func RunWordsImport(w io.Writer, dbPath, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	return RunWordsAdd(w, dbPath, words)
}

func RunWordsList(w io.Writer, dbPath string) error {
	sqlDB, store, err := openStore(dbPath)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	words, err := store.CustomWords()
	if err != nil {
		return err
	}
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	return nil
}
