package report

import (
	"fmt"
	"strings"
)

var sectionTitles = map[Check]string{
	CheckMisspelled:          "Misspelled Words",
	CheckSyntax:              "Syntax Errors",
	CheckPlaceholderMismatch: "Placeholder Mismatch Check",
	CheckPlaceholderOrder:    "Placeholder Order Check",
	CheckInvalidPlaceholder:  "Invalid Placeholder Syntax Check",
	CheckRepeatedWord:        "Repeated Word Check",
	CheckDriveCycle:          "Drive Cycle Format Check",
	CheckSuccessCriteria:     "Success Criteria Format Check",
	CheckDuplicateScenario:   "Duplicate Scenario Check",
}

// Text renders the plain-text report. Disabled sections are left out and
// enabled sections without findings print "None found".
func (r *Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gherkin Feature File Analysis Report\nGenerated: %s\nAnalyzed File: %s\n", r.Timestamp, r.Filename)
	fmt.Fprintf(&b, "Total Errors Found: %d\n%s\n\n", r.TotalErrors(), strings.Repeat("-", 50))

	for _, c := range AllChecks() {
		if !r.Enabled(c) {
			continue
		}
		b.WriteString(sectionTitles[c] + ":\n")
		lines := r.sectionLines(c)
		if len(lines) == 0 {
			b.WriteString(" - None found\n")
		} else {
			b.WriteString(strings.Join(lines, "\n"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("File Statistics:\n")
	fmt.Fprintf(&b, " - Total Lines: %d\n", r.Stats.TotalLines)
	fmt.Fprintf(&b, " - Scenarios: %d\n", r.Stats.Scenarios)
	fmt.Fprintf(&b, " - Steps: %d\n", r.Stats.Steps)
	fmt.Fprintf(&b, " - Total Iterations in Examples: %d\n", r.Stats.TotalIterations)
	return b.String()
}

func (r *Report) sectionLines(c Check) []string {
	var lines []string
	if c == CheckMisspelled {
		for _, m := range r.Misspellings {
			lines = append(lines, fmt.Sprintf(" - Line %d: '%s' [Suggestions: %s]", m.Line, m.Word, strings.Join(m.Suggestions, ", ")))
		}
		return lines
	}
	for _, is := range r.Category(c) {
		lines = append(lines, fmt.Sprintf(" - Line %d: %s", is.Line, is.Description))
	}
	return lines
}
