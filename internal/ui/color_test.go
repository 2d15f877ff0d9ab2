package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	OkLine(&buf, "a.feature")
	ErrLine(&buf, "b.feature", 1)
	ErrLine(&buf, "c.feature", 3)
	WroteLine(&buf, "reports/summary_report.text")
	SummaryLine(&buf, 3, 4)

	out := buf.String()
	assert.Contains(t, out, "ok  a.feature\n")
	assert.Contains(t, out, "err  b.feature (1 error)\n")
	assert.Contains(t, out, "err  c.feature (3 errors)\n")
	assert.Contains(t, out, "wrote  reports/summary_report.text\n")
	assert.Contains(t, out, "checked 3 files, 4 errors\n")
}

func TestHistoryRow(t *testing.T) {
	var buf bytes.Buffer
	HistoryRow(&buf, "0f8fad5b-d9cb-469f-a165-70867728950e", "2026-10-15 09:30:00", "a.feature", 2, 12)
	assert.Contains(t, buf.String(), "0f8fad5b  2026-10-15 09:30:00  a.feature        2\n")
}

func TestStatLine(t *testing.T) {
	var buf bytes.Buffer
	StatLine(&buf, "Cached words", 12)
	assert.Equal(t, "Cached words:  12\n", buf.String())
}
