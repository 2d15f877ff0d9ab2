package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedTime = "2026-10-15 09:30:00 AM"

func sampleReport() *Report {
	r := New("login.feature", Standard, nil)
	r.Timestamp = fixedTime
	r.Add(SyntaxError, "Scenario found before Feature", 2)
	r.AddMisspelling("logn", 3, []string{"login", "long"})
	r.UpdateStats(Stats{TotalLines: 10, Scenarios: 1, Steps: 2})
	return r
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestText(t *testing.T) {
	none := " - None found\n\n\n"
	want := "Gherkin Feature File Analysis Report\n" +
		"Generated: " + fixedTime + "\n" +
		"Analyzed File: login.feature\n" +
		"Total Errors Found: 2\n" +
		strings.Repeat("-", 50) + "\n\n" +
		"Misspelled Words:\n - Line 3: 'logn' [Suggestions: login, long]\n\n" +
		"Syntax Errors:\n - Line 2: Scenario found before Feature\n\n" +
		"Placeholder Mismatch Check:\n" + none +
		"Placeholder Order Check:\n" + none +
		"Invalid Placeholder Syntax Check:\n" + none +
		"Repeated Word Check:\n" + none +
		"Duplicate Scenario Check:\n" + none +
		"File Statistics:\n" +
		" - Total Lines: 10\n" +
		" - Scenarios: 1\n" +
		" - Steps: 2\n" +
		" - Total Iterations in Examples: 0\n"

	assert.Equal(t, want, sampleReport().Text())
}

func TestText_RuleSectionsFollowFeatureType(t *testing.T) {
	r := New("drive.feature", SuccessCriteria, nil)
	text := r.Text()
	assert.Contains(t, text, "Success Criteria Format Check:\n - None found")
	assert.NotContains(t, text, "Drive Cycle Format Check")
}

func TestRender_JSON(t *testing.T) {
	out, err := sampleReport().Render(FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n    \"timestamp\": ")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, "login.feature", raw["filename"])
	assert.EqualValues(t, 2, raw["total_errors"])
	assert.Equal(t, []any{}, raw["drive_cycle_errors"])
	assert.Equal(t, []any{map[string]any{"line": float64(2), "description": "Scenario found before Feature"}}, raw["syntax_errors"])
	assert.Equal(t, []any{map[string]any{"word": "logn", "line": float64(3), "suggestions": []any{"login", "long"}}}, raw["misspelled_words"])
	assert.Equal(t, map[string]any{
		"total_lines":      float64(10),
		"scenarios":        float64(1),
		"steps":            float64(2),
		"total_iterations": float64(0),
	}, raw["stats"])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := sampleReport().Render("yaml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSummary_Text(t *testing.T) {
	a, b := sampleReport(), New("empty.feature", Standard, nil)
	b.Timestamp = fixedTime

	out, err := Summary([]*Report{a, b}, FormatText)
	require.NoError(t, err)

	want := "Summary Report\nTotal Files Processed: 2\nTotal Errors Found: 2\n\n" + a.Text() + "\n\n" + b.Text()
	assert.Equal(t, want, string(out))
}

func TestSummary_JSON(t *testing.T) {
	out, err := Summary([]*Report{sampleReport()}, FormatJSON)
	require.NoError(t, err)

	var doc SummaryDocument
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, 1, doc.TotalFiles)
	assert.Equal(t, 2, doc.TotalErrors)
	require.Len(t, doc.Reports, 1)
	assert.Equal(t, "login.feature", doc.Reports[0].Filename)
}

func TestSummary_Empty(t *testing.T) {
	out, err := Summary(nil, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_files":0,"total_errors":0,"reports":[]}`, string(out))
}
