package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Render serializes the report. JSON output is indented with four spaces.
func (r *Report) Render(format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(r.Text()), nil
	case FormatJSON:
		return json.MarshalIndent(r.Document(), "", "    ")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Summary is the combined output for a batch of reports.
func Summary(reports []*Report, format Format) ([]byte, error) {
	total := 0
	for _, r := range reports {
		total += r.TotalErrors()
	}

	switch format {
	case FormatText:
		var b strings.Builder
		fmt.Fprintf(&b, "Summary Report\nTotal Files Processed: %d\nTotal Errors Found: %d\n\n", len(reports), total)
		texts := make([]string, 0, len(reports))
		for _, r := range reports {
			texts = append(texts, r.Text())
		}
		b.WriteString(strings.Join(texts, "\n\n"))
		return []byte(b.String()), nil
	case FormatJSON:
		docs := make([]Document, 0, len(reports))
		for _, r := range reports {
			docs = append(docs, r.Document())
		}
		return json.MarshalIndent(SummaryDocument{
			TotalFiles:  len(reports),
			TotalErrors: total,
			Reports:     docs,
		}, "", "    ")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
