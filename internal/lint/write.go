package lint

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chriserin/ftlint/internal/filelock"
	"github.com/chriserin/ftlint/internal/report"
)

// SummaryName is the base name of the batch summary, without extension.
const SummaryName = "summary_report"

// ReportName is the file one report is written to: "login.feature" becomes
// "report_login.<format>".
func ReportName(filename string, format report.Format) string {
	base := strings.ReplaceAll(filepath.Base(filename), Ext, "")
	return fmt.Sprintf("report_%s.%s", base, format)
}

// Write renders every report and the summary into dir while holding the
// directory lock, and returns the paths written with the summary last.
func Write(dir string, reports []*report.Report, format report.Format) ([]string, error) {
	lock, err := filelock.ForDir(dir)
	if err != nil {
		return nil, err
	}
	if err := lock.Lock(); err != nil {
		return nil, err
	}
	defer lock.Unlock()

	var written []string
	for _, r := range reports {
		data, err := r.Render(format)
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", r.Filename, err)
		}
		path := filepath.Join(dir, ReportName(r.Filename, format))
		if err := filelock.WriteFile(path, data); err != nil {
			return written, fmt.Errorf("writing report for %s: %w", r.Filename, err)
		}
		written = append(written, path)
	}

	data, err := report.Summary(reports, format)
	if err != nil {
		return written, fmt.Errorf("rendering summary: %w", err)
	}
	path := filepath.Join(dir, SummaryName+"."+string(format))
	if err := filelock.WriteFile(path, data); err != nil {
		return written, fmt.Errorf("writing summary: %w", err)
	}
	return append(written, path), nil
}
