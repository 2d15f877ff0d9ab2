package report

import (
	"errors"
	"fmt"
	"time"
)

// TimestampLayout matches the "2006-01-02 03:04:05 PM" form used in report headers.
const TimestampLayout = "2006-01-02 03:04:05 PM"

var (
	ErrUnsupportedFormat  = errors.New("unsupported report format")
	ErrUnknownFeatureType = errors.New("unknown feature type")
	ErrUnknownCheck       = errors.New("unknown check")
)

type Kind string

const (
	SyntaxError              Kind = "Syntax Error"
	PlaceholderMismatch      Kind = "Placeholder Mismatch"
	PlaceholderOrder         Kind = "Placeholder Order"
	InvalidPlaceholderSyntax Kind = "Invalid Placeholder Syntax"
	RepeatedWord             Kind = "Repeated Word"
	DuplicateScenario        Kind = "Duplicate Scenario"
)

// FeatureType selects the step-composition rules a document is held to.
type FeatureType string

const (
	Standard        FeatureType = "standard"
	DriveCycle      FeatureType = "drive_cycle"
	SuccessCriteria FeatureType = "success_criteria"
)

// ParseFeatureType accepts the underscore form as well as the dashed and
// spaced spellings ("drive-cycle", "Drive Cycle").
func ParseFeatureType(s string) (FeatureType, error) {
	switch normalizeName(s) {
	case "", string(Standard):
		return Standard, nil
	case string(DriveCycle):
		return DriveCycle, nil
	case string(SuccessCriteria):
		return SuccessCriteria, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeatureType, s)
}

// Issue is a single structural finding. Rule is set when the issue was raised
// by a feature-type policy.
type Issue struct {
	Kind        Kind
	Description string
	Line        int
	Rule        FeatureType
}

type Misspelling struct {
	Word        string
	Line        int
	Suggestions []string
}

type Stats struct {
	TotalLines      int `json:"total_lines"`
	Scenarios       int `json:"scenarios"`
	Steps           int `json:"steps"`
	TotalIterations int `json:"total_iterations"`
}

// Report collects the findings for one document. It is written during a scan
// and only read afterwards.
type Report struct {
	Issues       []Issue
	Misspellings []Misspelling
	Stats        Stats
	Timestamp    string
	Filename     string
	FeatureType  FeatureType
	checks       Checks
}

func New(filename string, featureType FeatureType, checks Checks) *Report {
	if featureType == "" {
		featureType = Standard
	}
	return &Report{
		Timestamp:   time.Now().Format(TimestampLayout),
		Filename:    filename,
		FeatureType: featureType,
		checks:      checks.clone(),
	}
}

func (r *Report) Add(kind Kind, description string, line int) {
	r.Issues = append(r.Issues, Issue{Kind: kind, Description: description, Line: line})
}

// AddRule records a syntax error raised by the policy of featureType.
func (r *Report) AddRule(featureType FeatureType, description string, line int) {
	r.Issues = append(r.Issues, Issue{Kind: SyntaxError, Description: description, Line: line, Rule: featureType})
}

func (r *Report) AddMisspelling(word string, line int, suggestions []string) {
	if suggestions == nil {
		suggestions = []string{}
	}
	r.Misspellings = append(r.Misspellings, Misspelling{Word: word, Line: line, Suggestions: suggestions})
}

func (r *Report) UpdateStats(stats Stats) {
	r.Stats = stats
}

// Checks returns a copy of the checks the report was built with.
func (r *Report) Checks() Checks {
	return r.checks.clone()
}

// Enabled reports whether the category is shown and counted. The drive cycle
// and success criteria categories also require a matching feature type.
func (r *Report) Enabled(c Check) bool {
	if !r.checks.Enabled(c) {
		return false
	}
	switch c {
	case CheckDriveCycle:
		return r.FeatureType == DriveCycle
	case CheckSuccessCriteria:
		return r.FeatureType == SuccessCriteria
	}
	return true
}

// Category returns the issues that belong to the check, in scan order. It
// ignores whether the check is enabled.
func (r *Report) Category(c Check) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if belongs(is, c) {
			out = append(out, is)
		}
	}
	return out
}

func belongs(is Issue, c Check) bool {
	switch c {
	case CheckSyntax:
		return is.Kind == SyntaxError
	case CheckPlaceholderMismatch:
		return is.Kind == PlaceholderMismatch
	case CheckPlaceholderOrder:
		return is.Kind == PlaceholderOrder
	case CheckInvalidPlaceholder:
		return is.Kind == InvalidPlaceholderSyntax
	case CheckRepeatedWord:
		return is.Kind == RepeatedWord
	case CheckDriveCycle:
		return is.Kind == SyntaxError && is.Rule == DriveCycle
	case CheckSuccessCriteria:
		return is.Kind == SyntaxError && is.Rule == SuccessCriteria
	case CheckDuplicateScenario:
		return is.Kind == DuplicateScenario
	}
	return false
}

// TotalErrors sums the enabled categories. Policy errors are syntax errors as
// well, so they count under both categories when both are enabled.
func (r *Report) TotalErrors() int {
	total := 0
	for _, c := range AllChecks() {
		if !r.Enabled(c) {
			continue
		}
		if c == CheckMisspelled {
			total += len(r.Misspellings)
			continue
		}
		total += len(r.Category(c))
	}
	return total
}
