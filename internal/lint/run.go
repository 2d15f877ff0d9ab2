package lint

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/chriserin/ftlint/internal/logger"
	"github.com/chriserin/ftlint/internal/parser"
	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
)

type Options struct {
	FeatureType report.FeatureType
	Checks      report.Checks
	// Speller is shared by every scan in the batch; nil disables spelling.
	Speller *spell.Speller
	Workers int
	Logger  logger.Logger
}

// Run scans files with at most opts.Workers scans in flight. Reports come
// back in the order of files. A file that cannot be read is logged and
// left out. Cancelling ctx stops new scans from starting.
func Run(ctx context.Context, files []string, opts Options) ([]*report.Report, error) {
	log := logger.OrNop(opts.Logger)
	workers := max(opts.Workers, 1)
	scanOpts := parser.Options{
		FeatureType: opts.FeatureType,
		Checks:      opts.Checks,
		Speller:     opts.Speller,
		Logger:      log,
	}

	results := make([]*report.Report, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				log.Warnf("skipping %s: %v", path, err)
				return nil
			}
			r, err := parser.Scan(path, content, scanOpts)
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			log.Infof("checked %s: %d errors", path, r.TotalErrors())
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait cancels gctx; only the caller's context says the batch was cut short.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]*report.Report, 0, len(results))
	for _, r := range results {
		if r != nil {
			reports = append(reports, r)
		}
	}
	return reports, nil
}
