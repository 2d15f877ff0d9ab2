package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/ftlint/internal/config"
	"github.com/chriserin/ftlint/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ftlint in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

var (
	dbFile     = filepath.Join(config.Dir, "ftlint.db")
	configFile = filepath.Join(config.Dir, "config.yaml")
)

const defaultConfig = `# ftlint configuration
feature_type: standard
format: text
output_dir: reports
spellcheck:
  enabled: true
  language: en_UK
`

func RunInit(w io.Writer) error {
	// .ftlint/ directory
	_, err := os.Stat(config.Dir)
	dirExists := err == nil
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", config.Dir, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", config.Dir)
	} else {
		fmt.Fprintf(w, "%s/ created\n", config.Dir)
	}

	// database
	_, err = os.Stat(dbFile)
	dbExists := err == nil
	sqlDB, err := db.Open(dbFile)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", dbFile)
	} else {
		fmt.Fprintf(w, "%s created\n", dbFile)
	}

	// config
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(w, "%s already exists\n", configFile)
	} else {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFile, err)
		}
		fmt.Fprintf(w, "%s created\n", configFile)
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore() ([]string, error) {
	entry := filepath.ToSlash(dbFile)

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
