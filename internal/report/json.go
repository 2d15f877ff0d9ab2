package report

// Document is the structured form of a Report.
type Document struct {
	Timestamp             string            `json:"timestamp"`
	Filename              string            `json:"filename"`
	TotalErrors           int               `json:"total_errors"`
	MisspelledWords       []MisspelledEntry `json:"misspelled_words"`
	SyntaxErrors          []Entry           `json:"syntax_errors"`
	PlaceholderMismatches []Entry           `json:"placeholder_mismatches"`
	PlaceholderOrders     []Entry           `json:"placeholder_orders"`
	InvalidPlaceholders   []Entry           `json:"invalid_placeholders"`
	RepeatedWords         []Entry           `json:"repeated_words"`
	DriveCycleErrors      []Entry           `json:"drive_cycle_errors"`
	SuccessCriteriaErrors []Entry           `json:"success_criteria_errors"`
	DuplicateScenarios    []Entry           `json:"duplicate_scenarios"`
	Stats                 Stats             `json:"stats"`
}

type Entry struct {
	Line        int    `json:"line"`
	Description string `json:"description"`
}

type MisspelledEntry struct {
	Word        string   `json:"word"`
	Line        int      `json:"line"`
	Suggestions []string `json:"suggestions"`
}

type SummaryDocument struct {
	TotalFiles  int        `json:"total_files"`
	TotalErrors int        `json:"total_errors"`
	Reports     []Document `json:"reports"`
}

// Document builds the structured form. Categories that are disabled are
// empty arrays, never null.
func (r *Report) Document() Document {
	doc := Document{
		Timestamp:       r.Timestamp,
		Filename:        r.Filename,
		TotalErrors:     r.TotalErrors(),
		MisspelledWords: []MisspelledEntry{},
		Stats:           r.Stats,
	}
	if r.Enabled(CheckMisspelled) {
		for _, m := range r.Misspellings {
			doc.MisspelledWords = append(doc.MisspelledWords, MisspelledEntry{Word: m.Word, Line: m.Line, Suggestions: m.Suggestions})
		}
	}
	doc.SyntaxErrors = r.entries(CheckSyntax)
	doc.PlaceholderMismatches = r.entries(CheckPlaceholderMismatch)
	doc.PlaceholderOrders = r.entries(CheckPlaceholderOrder)
	doc.InvalidPlaceholders = r.entries(CheckInvalidPlaceholder)
	doc.RepeatedWords = r.entries(CheckRepeatedWord)
	doc.DriveCycleErrors = r.entries(CheckDriveCycle)
	doc.SuccessCriteriaErrors = r.entries(CheckSuccessCriteria)
	doc.DuplicateScenarios = r.entries(CheckDuplicateScenario)
	return doc
}

func (r *Report) entries(c Check) []Entry {
	out := []Entry{}
	if !r.Enabled(c) {
		return out
	}
	for _, is := range r.Category(c) {
		out = append(out, Entry{Line: is.Line, Description: is.Description})
	}
	return out
}
