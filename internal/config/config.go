// Package config loads ftlint settings using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
)

// Dir is the project-local directory holding the config file and database.
const Dir = ".ftlint"

var ErrInvalidWorkers = errors.New("workers must be at least 1")

type Config struct {
	FeatureType string          `mapstructure:"feature_type" yaml:"feature_type"`
	Format      string          `mapstructure:"format" yaml:"format"`
	Workers     int             `mapstructure:"workers" yaml:"workers"`
	OutputDir   string          `mapstructure:"output_dir" yaml:"output_dir"`
	LogLevel    string          `mapstructure:"log_level" yaml:"log_level"`
	Database    string          `mapstructure:"database" yaml:"database"`
	Checks      map[string]bool `mapstructure:"checks" yaml:"checks,omitempty"`
	Spellcheck  Spellcheck      `mapstructure:"spellcheck" yaml:"spellcheck"`
	CustomWords []string        `mapstructure:"custom_words" yaml:"custom_words,omitempty"`

	// File is the config file that was read, empty when only defaults and
	// environment were used.
	File string `mapstructure:"-" yaml:"-"`
}

type Spellcheck struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Language   string `mapstructure:"language" yaml:"language"`
	Dictionary string `mapstructure:"dictionary" yaml:"dictionary,omitempty"`
}

func globalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ftlint"), nil
}

// Load reads the configuration. Files are searched in this order:
//  1. path, when not empty (the --config flag)
//  2. .ftlint/config.yaml in the current directory
//  3. ~/.config/ftlint/config.yaml
//
// A missing file is not an error unless path names it. FTLINT_* environment
// variables override file values, e.g. FTLINT_SPELLCHECK_ENABLED.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir)
		if dir, err := globalDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("feature_type", string(report.Standard))
	v.SetDefault("format", string(report.FormatText))
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("output_dir", "reports")
	v.SetDefault("log_level", "warn")
	v.SetDefault("database", filepath.Join(Dir, "ftlint.db"))
	v.SetDefault("spellcheck.enabled", true)
	v.SetDefault("spellcheck.language", "en_UK")
	v.SetDefault("spellcheck.dictionary", "")

	v.SetEnvPrefix("FTLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := report.ParseFeatureType(c.FeatureType); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidWorkers, c.Workers)
	}
	if _, err := c.EnabledChecks(); err != nil {
		return err
	}
	if c.Spellcheck.Enabled {
		if _, err := spell.ParseLanguage(c.Spellcheck.Language); err != nil {
			return err
		}
	}
	return nil
}

// EnabledChecks starts from every check enabled and applies the checks map.
func (c *Config) EnabledChecks() (report.Checks, error) {
	checks := report.DefaultChecks()
	for name, on := range c.Checks {
		check, err := report.ParseCheck(name)
		if err != nil {
			return nil, err
		}
		checks[check] = on
	}
	return checks, nil
}

func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
