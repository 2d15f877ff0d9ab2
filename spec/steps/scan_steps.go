// Package steps provides step definitions for the ftlint acceptance specs.
package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/chriserin/ftlint/internal/parser"
	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
)

type contextKey string

const worldKey contextKey = "world"

// world is the state of one scenario: the document under test, the scan
// settings and the resulting report.
type world struct {
	content     string
	featureType report.FeatureType
	checks      report.Checks
	words       []string
	custom      []string
	report      *report.Report
}

func getWorld(ctx context.Context) *world {
	if w, ok := ctx.Value(worldKey).(*world); ok {
		return w
	}
	return nil
}

// InitializeScanSteps registers the scanning step definitions.
func InitializeScanSteps(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return context.WithValue(ctx, worldKey, &world{
			featureType: report.Standard,
			checks:      report.DefaultChecks(),
		}), nil
	})

	// Given steps
	ctx.Step(`^a feature file:$`, aFeatureFile)
	ctx.Step(`^the feature type is "([^"]*)"$`, theFeatureTypeIs)
	ctx.Step(`^the dictionary contains "([^"]*)"$`, theDictionaryContains)
	ctx.Step(`^the custom words include "([^"]*)"$`, theCustomWordsInclude)
	ctx.Step(`^the "([^"]*)" check is disabled$`, theCheckIsDisabled)

	// When steps
	ctx.Step(`^I check the file$`, iCheckTheFile)

	// Then steps
	ctx.Step(`^the report should have no issues$`, theReportShouldHaveNoIssues)
	ctx.Step(`^the report should contain "([^"]*)" at line (\d+)$`, theReportShouldContainAtLine)
	ctx.Step(`^the report should contain at line (\d+):$`, theReportShouldContainAtLineDoc)
	ctx.Step(`^the report should contain (\d+) "([^"]*)" issues?$`, theReportShouldContainIssues)
	ctx.Step(`^"([^"]*)" should be reported as misspelled at line (\d+)$`, shouldBeReportedAsMisspelled)
	ctx.Step(`^no word should be reported as misspelled$`, noWordShouldBeMisspelled)
	ctx.Step(`^the total error count should be (\d+)$`, theTotalErrorCountShouldBe)
	ctx.Step(`^the text report should not contain "([^"]*)"$`, theTextReportShouldNotContain)
	ctx.Step(`^the text report should contain "([^"]*)"$`, theTextReportShouldContain)
}

func aFeatureFile(ctx context.Context, doc *godog.DocString) error {
	getWorld(ctx).content = doc.Content + "\n"
	return nil
}

func theFeatureTypeIs(ctx context.Context, name string) error {
	ft, err := report.ParseFeatureType(name)
	if err != nil {
		return err
	}
	getWorld(ctx).featureType = ft
	return nil
}

func theDictionaryContains(ctx context.Context, list string) error {
	w := getWorld(ctx)
	w.words = append(w.words, splitList(list)...)
	return nil
}

func theCustomWordsInclude(ctx context.Context, list string) error {
	w := getWorld(ctx)
	w.custom = append(w.custom, splitList(list)...)
	return nil
}

func theCheckIsDisabled(ctx context.Context, name string) error {
	c, err := report.ParseCheck(name)
	if err != nil {
		return err
	}
	getWorld(ctx).checks[c] = false
	return nil
}

func iCheckTheFile(ctx context.Context) error {
	w := getWorld(ctx)
	opts := parser.Options{FeatureType: w.featureType, Checks: w.checks}
	if len(w.words) > 0 {
		cache := spell.NewCache()
		cache.AddWords(w.custom...)
		opts.Speller = spell.NewSpeller(spell.NewDictionary(w.words), cache)
	}

	r, err := parser.Scan("spec.feature", []byte(w.content), opts)
	if err != nil {
		return err
	}
	w.report = r
	return nil
}

func theReportShouldHaveNoIssues(ctx context.Context) error {
	r := getWorld(ctx).report
	if len(r.Issues) > 0 {
		return fmt.Errorf("expected no issues, got:\n%s", describe(r.Issues))
	}
	return nil
}

func theReportShouldContainAtLine(ctx context.Context, description string, line int) error {
	r := getWorld(ctx).report
	for _, is := range r.Issues {
		if is.Description == description && is.Line == line {
			return nil
		}
	}
	return fmt.Errorf("no issue %q at line %d in:\n%s", description, line, describe(r.Issues))
}

// theReportShouldContainAtLineDoc takes the description from a doc string,
// for messages that quote placeholders.
func theReportShouldContainAtLineDoc(ctx context.Context, line int, doc *godog.DocString) error {
	return theReportShouldContainAtLine(ctx, strings.TrimSpace(doc.Content), line)
}

func theReportShouldContainIssues(ctx context.Context, n int, kind string) error {
	r := getWorld(ctx).report
	got := 0
	for _, is := range r.Issues {
		if string(is.Kind) == kind {
			got++
		}
	}
	if got != n {
		return fmt.Errorf("expected %d %q issues, got %d in:\n%s", n, kind, got, describe(r.Issues))
	}
	return nil
}

func shouldBeReportedAsMisspelled(ctx context.Context, word string, line int) error {
	r := getWorld(ctx).report
	for _, m := range r.Misspellings {
		if m.Word == word && m.Line == line {
			return nil
		}
	}
	return fmt.Errorf("%q not reported as misspelled at line %d (got %v)", word, line, r.Misspellings)
}

func noWordShouldBeMisspelled(ctx context.Context) error {
	if ms := getWorld(ctx).report.Misspellings; len(ms) > 0 {
		return fmt.Errorf("expected no misspellings, got %v", ms)
	}
	return nil
}

func theTotalErrorCountShouldBe(ctx context.Context, n int) error {
	if got := getWorld(ctx).report.TotalErrors(); got != n {
		return fmt.Errorf("expected %d errors, got %d", n, got)
	}
	return nil
}

func theTextReportShouldContain(ctx context.Context, s string) error {
	if !strings.Contains(getWorld(ctx).report.Text(), s) {
		return errors.New("text report does not contain " + s)
	}
	return nil
}

func theTextReportShouldNotContain(ctx context.Context, s string) error {
	if strings.Contains(getWorld(ctx).report.Text(), s) {
		return errors.New("text report contains " + s)
	}
	return nil
}

func splitList(list string) []string {
	var out []string
	for _, w := range strings.Split(list, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func describe(issues []report.Issue) string {
	var b strings.Builder
	for _, is := range issues {
		fmt.Fprintf(&b, "  line %d [%s] %s\n", is.Line, is.Kind, is.Description)
	}
	return b.String()
}
