package parser

import "strings"

// SourceLine is one line of a document. Number is 1-based and Text is the
// trimmed form every check works on.
type SourceLine struct {
	Number int
	Raw    string
	Text   string
}

// Lines splits content into source lines. A final newline does not start an
// extra empty line.
func Lines(content []byte) []SourceLine {
	if len(content) == 0 {
		return nil
	}
	raw := strings.Split(string(content), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]SourceLine, len(raw))
	for i, r := range raw {
		lines[i] = SourceLine{Number: i + 1, Raw: r, Text: strings.TrimSpace(r)}
	}
	return lines
}

type LineKind int

const (
	Blank LineKind = iota
	Comment
	FeatureLine
	ScenarioLine
	ExamplesLine
	TableRow
	StepLine
	Other
)

func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case FeatureLine:
		return "feature"
	case ScenarioLine:
		return "scenario"
	case ExamplesLine:
		return "examples"
	case TableRow:
		return "table-row"
	case StepLine:
		return "step"
	}
	return "other"
}

type StepKind string

const (
	Given StepKind = "Given"
	When  StepKind = "When"
	Then  StepKind = "Then"
	And   StepKind = "And"
	But   StepKind = "But"
)

var stepKinds = []StepKind{Given, When, Then, And, But}

// Classify tags a trimmed line. Keywords match by prefix, so "Scenario"
// covers "Scenario Outline:" as well.
func Classify(text string) LineKind {
	switch {
	case text == "":
		return Blank
	case strings.HasPrefix(text, "#"):
		return Comment
	case strings.HasPrefix(text, "Feature"):
		return FeatureLine
	case strings.HasPrefix(text, "Scenario"):
		return ScenarioLine
	case strings.HasPrefix(text, "Examples"):
		return ExamplesLine
	case strings.HasPrefix(text, "|"):
		return TableRow
	}
	if _, ok := StepKindOf(text); ok {
		return StepLine
	}
	return Other
}

func StepKindOf(text string) (StepKind, bool) {
	for _, k := range stepKinds {
		if strings.HasPrefix(text, string(k)) {
			return k, true
		}
	}
	return "", false
}

// tableCells returns the cells between the first and last pipe.
func tableCells(text string) []string {
	parts := strings.Split(text, "|")
	if len(parts) < 2 {
		return nil
	}
	cells := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
