package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chriserin/ftlint/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunConfig(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func RunConfig(w io.Writer, cfg *config.Config) error {
	out, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if cfg.File != "" {
		fmt.Fprintf(w, "# %s\n", cfg.File)
	}
	_, err = w.Write(out)
	return err
}
