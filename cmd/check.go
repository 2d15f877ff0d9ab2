package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chriserin/ftlint/internal/config"
	"github.com/chriserin/ftlint/internal/db"
	"github.com/chriserin/ftlint/internal/lint"
	"github.com/chriserin/ftlint/internal/logger"
	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
	"github.com/chriserin/ftlint/internal/ui"
)

// CheckOptions are the check flags. Zero values defer to the configuration.
type CheckOptions struct {
	FeatureType string
	Format      string
	Checks      []string
	Skip        []string
	OutputDir   string
	Workers     int
	NoSpell     bool
	Dictionary  string
	FailOnError bool
}

var checkOpts CheckOptions

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check feature files and write reports",
	Long: `Check every given .feature file, and every .feature file directly inside
each given directory. With no paths the current directory is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return RunCheck(cmd.Context(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg), cfg, args, checkOpts)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkOpts.FeatureType, "type", "t", "", "Feature type: standard, drive_cycle, success_criteria")
	f.StringVarP(&checkOpts.Format, "format", "f", "", "Report format: text or json")
	f.StringSliceVar(&checkOpts.Checks, "checks", nil, "Only run these checks")
	f.StringSliceVar(&checkOpts.Skip, "skip", nil, "Skip these checks")
	f.StringVarP(&checkOpts.OutputDir, "out", "o", "", "Report output directory")
	f.IntVarP(&checkOpts.Workers, "workers", "w", 0, "Files checked in parallel")
	f.BoolVar(&checkOpts.NoSpell, "no-spell", false, "Disable spellchecking")
	f.StringVar(&checkOpts.Dictionary, "dictionary", "", "Word list or hunspell .dic file")
	f.BoolVar(&checkOpts.FailOnError, "fail-on-error", false, "Exit with status 2 when any error is found")
	rootCmd.AddCommand(checkCmd)
}

// apply overlays the flags that were set onto cfg.
func (o CheckOptions) apply(cfg *config.Config) {
	if o.FeatureType != "" {
		cfg.FeatureType = o.FeatureType
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if o.Workers != 0 {
		cfg.Workers = o.Workers
	}
	if o.NoSpell {
		cfg.Spellcheck.Enabled = false
	}
	if o.Dictionary != "" {
		cfg.Spellcheck.Dictionary = o.Dictionary
	}
}

func (o CheckOptions) checks(cfg *config.Config) (report.Checks, error) {
	checks, err := cfg.EnabledChecks()
	if err != nil {
		return nil, err
	}
	if len(o.Checks) > 0 {
		if checks, err = report.Select(o.Checks, nil); err != nil {
			return nil, err
		}
	}
	for _, s := range o.Skip {
		c, err := report.ParseCheck(s)
		if err != nil {
			return nil, err
		}
		checks[c] = false
	}
	return checks, nil
}

func RunCheck(ctx context.Context, w io.Writer, log logger.Logger, cfg *config.Config, paths []string, opts CheckOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log = logger.OrNop(log)

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	featureType, _ := report.ParseFeatureType(cfg.FeatureType)
	format, _ := report.ParseFormat(cfg.Format)
	checks, err := opts.checks(cfg)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := lint.Collect(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", lint.Ext)
	}

	// The database is optional: without `ftlint init` nothing is persisted.
	var store *db.Store
	if sqlDB, s, err := openStore(cfg.Database); err == nil {
		defer sqlDB.Close()
		store = s
	} else {
		log.Debugf("no history or spell cache: %v", err)
	}

	speller, err := loadSpeller(cfg, store, log)
	if err != nil {
		return err
	}

	reports, err := lint.Run(ctx, files, lint.Options{
		FeatureType: featureType,
		Checks:      checks,
		Speller:     speller,
		Workers:     cfg.Workers,
		Logger:      log,
	})
	if err != nil {
		return err
	}

	total := 0
	for _, r := range reports {
		n := r.TotalErrors()
		total += n
		if n == 0 {
			ui.OkLine(w, r.Filename)
		} else {
			ui.ErrLine(w, r.Filename, n)
		}
	}

	written, err := lint.Write(cfg.OutputDir, reports, format)
	if err != nil {
		return err
	}
	for _, path := range written {
		ui.WroteLine(w, path)
	}

	if store != nil {
		if speller.Active() {
			if err := store.SaveSpellCache(speller.Cache.Snapshot()); err != nil {
				return err
			}
		}
		if err := store.RecordRun(uuid.New().String(), reports); err != nil {
			return err
		}
	}

	ui.SummaryLine(w, len(reports), total)
	if opts.FailOnError && total > 0 {
		return &exitError{code: 2, msg: fmt.Sprintf("%d errors found", total)}
	}
	return nil
}

// loadSpeller builds the shared speller, or returns nil when spelling is
// off. A missing system dictionary only disables spelling; an explicit
// dictionary that cannot be read is an error.
func loadSpeller(cfg *config.Config, store *db.Store, log logger.Logger) (*spell.Speller, error) {
	if !cfg.Spellcheck.Enabled {
		return nil, nil
	}

	path := cfg.Spellcheck.Dictionary
	if path == "" {
		tag, err := spell.ParseLanguage(cfg.Spellcheck.Language)
		if err != nil {
			return nil, err
		}
		if path, err = spell.FindDictionary(tag); err != nil {
			log.Warnf("spellcheck disabled: %v", err)
			return nil, nil
		}
	}
	dict, err := spell.LoadDictionary(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	log.Debugf("dictionary %s: %d words", path, dict.Len())

	cache := spell.NewCache()
	cache.AddWords(cfg.CustomWords...)
	if store != nil {
		entries, err := store.LoadSpellCache()
		if err != nil {
			return nil, err
		}
		cache.Load(entries)
		words, err := store.CustomWords()
		if err != nil {
			return nil, err
		}
		cache.AddWords(words...)
	}
	return spell.NewSpeller(dict, cache), nil
}
