package lint

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
)

const cleanFeature = `Feature: Login
  Scenario: Successful login
    Given a registered user
    When they log in
    Then the dashboard is shown
`

const brokenFeature = `Scenario: Early
  Given the the user
`

func writeFeature(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFeature(t, dir, "b.feature", cleanFeature)
	writeFeature(t, dir, "a.feature", cleanFeature)
	writeFeature(t, dir, "notes.txt", "x")
	writeFeature(t, dir, "nested/c.feature", cleanFeature)
	explicit := writeFeature(t, t.TempDir(), "draft.gherkin", cleanFeature)

	files, err := Collect([]string{dir, explicit})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.feature"),
		filepath.Join(dir, "b.feature"),
		explicit,
	}, files)
}

func TestCollect_MissingPath(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "missing.feature")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_KeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"d", "c", "b", "a"} {
		content := cleanFeature
		if name == "c" {
			content = brokenFeature
		}
		files = append(files, writeFeature(t, dir, name+".feature", content))
	}

	reports, err := Run(context.Background(), files, Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, reports, 4)
	for i, r := range reports {
		assert.Equal(t, files[i], r.Filename)
	}
	assert.Equal(t, 0, reports[0].TotalErrors())
	assert.Greater(t, reports[1].TotalErrors(), 0)
}

func TestRun_FinishedBatchIsNotCancelled(t *testing.T) {
	clean := writeFeature(t, t.TempDir(), "clean.feature", cleanFeature)

	reports, err := Run(context.Background(), []string{clean}, Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 0, reports[0].TotalErrors())
}

func TestRun_SkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFeature(t, dir, "good.feature", cleanFeature)
	missing := filepath.Join(dir, "gone.feature")

	reports, err := Run(context.Background(), []string{missing, good}, Options{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, good, reports[0].Filename)
}

func TestRun_UnknownFeatureType(t *testing.T) {
	good := writeFeature(t, t.TempDir(), "good.feature", cleanFeature)
	_, err := Run(context.Background(), []string{good}, Options{FeatureType: "bogus"})
	assert.ErrorIs(t, err, report.ErrUnknownFeatureType)
}

func TestRun_Cancelled(t *testing.T) {
	good := writeFeature(t, t.TempDir(), "good.feature", cleanFeature)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []string{good}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

type wordList map[string]bool

func (w wordList) Check(word string) bool  { return w[word] }
func (w wordList) Suggest(string) []string { return nil }

func TestRun_SharesSpellCache(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a", "b", "c"} {
		files = append(files, writeFeature(t, dir, name+".feature", cleanFeature))
	}
	cache := spell.NewCache()
	speller := spell.NewSpeller(wordList{}, cache)

	_, err := Run(context.Background(), files, Options{Workers: 3, Speller: speller})
	require.NoError(t, err)

	snap := cache.Snapshot()
	assert.Contains(t, snap, "registered")
	assert.Contains(t, snap, "dashboard")
}

func TestReportName(t *testing.T) {
	assert.Equal(t, "report_login.text", ReportName("specs/login.feature", report.FormatText))
	assert.Equal(t, "report_login.json", ReportName("login.feature", report.FormatJSON))
	assert.Equal(t, "report_draft.gherkin.json", ReportName("draft.gherkin", report.FormatJSON))
}

func TestWrite(t *testing.T) {
	src := t.TempDir()
	files := []string{
		writeFeature(t, src, "login.feature", cleanFeature),
		writeFeature(t, src, "early.feature", brokenFeature),
	}
	reports, err := Run(context.Background(), files, Options{})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "reports")
	written, err := Write(out, reports, report.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "report_login.json"),
		filepath.Join(out, "report_early.json"),
		filepath.Join(out, "summary_report.json"),
	}, written)

	data, err := os.ReadFile(filepath.Join(out, "summary_report.json"))
	require.NoError(t, err)
	var summary report.SummaryDocument
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, reports[1].TotalErrors(), summary.TotalErrors)
}

func TestWrite_Text(t *testing.T) {
	src := t.TempDir()
	reports, err := Run(context.Background(), []string{writeFeature(t, src, "login.feature", cleanFeature)}, Options{})
	require.NoError(t, err)

	out := t.TempDir()
	_, err = Write(out, reports, report.FormatText)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "summary_report.text"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Summary Report\nTotal Files Processed: 1\nTotal Errors Found: 0\n\n"))
}
