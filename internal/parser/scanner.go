package parser

import (
	"fmt"
	"strings"

	"github.com/chriserin/ftlint/internal/logger"
	"github.com/chriserin/ftlint/internal/report"
	"github.com/chriserin/ftlint/internal/spell"
)

// Options configures a scan. The zero value scans a standard document with
// every check enabled and no spellchecking.
type Options struct {
	FeatureType report.FeatureType
	Checks      report.Checks
	Speller     *spell.Speller
	Logger      logger.Logger
}

type state int

const (
	awaitingScenario state = iota
	inScenario
	inExamplesHeader
	inExamplesRows
)

type scenario struct {
	title   string
	start   int
	steps   []SourceLine
	counts  stepCounts
	headers []string
}

type scanner struct {
	featureType report.FeatureType
	policy      policy
	speller     *spell.Speller
	log         logger.Logger
	r           *report.Report

	state      state
	hasFeature bool
	current    *scenario
	// titles maps a scenario line to the line it was first seen on.
	titles map[string]int
	stats  report.Stats
}

// Scan checks one document and returns its report.
func Scan(filename string, content []byte, opts Options) (*report.Report, error) {
	return ScanLines(filename, Lines(content), opts)
}

// ScanLines checks pre-split lines. It fails only for an unknown feature
// type; every finding in the document goes into the report.
func ScanLines(filename string, lines []SourceLine, opts Options) (*report.Report, error) {
	ft := opts.FeatureType
	if ft == "" {
		ft = report.Standard
	}
	p, ok := policies[ft]
	if !ok {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownFeatureType, ft)
	}

	s := &scanner{
		featureType: ft,
		policy:      p,
		speller:     opts.Speller,
		log:         logger.OrNop(opts.Logger),
		r:           report.New(filename, ft, opts.Checks),
		titles:      make(map[string]int),
	}
	for _, l := range lines {
		s.line(l)
	}
	s.end(len(lines))

	s.log.Debugf("scanned %s: %d lines, %d issues, %d misspellings", filename, len(lines), len(s.r.Issues), len(s.r.Misspellings))
	return s.r, nil
}

func (s *scanner) inExamples() bool {
	return s.state == inExamplesHeader || s.state == inExamplesRows
}

func (s *scanner) line(l SourceLine) {
	kind := Classify(l.Text)
	if kind == Blank || kind == Comment {
		return
	}
	exampleRow := kind == TableRow && s.inExamples()

	switch kind {
	case FeatureLine:
		s.hasFeature = true
	case ScenarioLine:
		s.startScenario(l)
	case ExamplesLine:
		s.startExamples(l)
	case TableRow:
		if exampleRow {
			s.tableRow(l)
		}
	case StepLine:
		s.step(l)
	}

	for _, desc := range InvalidPlaceholders(l.Text) {
		s.r.Add(report.InvalidPlaceholderSyntax, desc, l.Number)
	}
	if exampleRow {
		return
	}
	s.spelling(l)
	for _, w := range RepeatedWords(Mask(l.Text)) {
		s.r.Add(report.RepeatedWord, fmt.Sprintf("Word '%s' repeated", w), l.Number)
	}
}

func (s *scanner) startScenario(l SourceLine) {
	s.finishScenario()

	if !s.hasFeature {
		s.r.Add(report.SyntaxError, "Scenario found before Feature", l.Number)
	}
	s.stats.Scenarios++

	if first, ok := s.titles[l.Text]; ok {
		s.r.Add(report.DuplicateScenario, fmt.Sprintf("Scenario identical to one at line %d", first), l.Number)
	} else {
		s.titles[l.Text] = l.Number
	}

	s.current = &scenario{title: l.Text, start: l.Number}
	s.state = inScenario
}

// finishScenario applies the boundary rules to the scenario being closed.
// Findings are reported at the scenario's own line.
func (s *scanner) finishScenario() {
	sc := s.current
	if sc == nil {
		return
	}
	c := sc.counts
	s.log.Debugf("%q at line %d: given=%d when=%d then=%d and=%d but=%d", sc.title, sc.start, c.given, c.when, c.then, c.and, c.but)
	for _, desc := range s.policy.checkBoundary(c) {
		s.r.AddRule(s.featureType, desc, sc.start)
	}
}

func (s *scanner) startExamples(l SourceLine) {
	if s.current == nil {
		s.r.Add(report.SyntaxError, "Examples found outside a Scenario", l.Number)
	}
	// Headers are taken once per scenario; later blocks only add rows.
	if s.current != nil && s.current.headers != nil {
		s.state = inExamplesRows
		return
	}
	s.state = inExamplesHeader
}

func (s *scanner) tableRow(l SourceLine) {
	if s.state == inExamplesRows {
		s.stats.TotalIterations++
		return
	}
	s.state = inExamplesRows
	if s.current == nil {
		return
	}
	s.current.headers = tableCells(l.Text)
	s.checkPlaceholders(l.Number)
}

func (s *scanner) step(l SourceLine) {
	kind, _ := StepKindOf(l.Text)
	if s.current == nil {
		s.r.Add(report.SyntaxError, "Step found outside a Scenario", l.Number)
	}
	s.stats.Steps++

	if s.current != nil && !s.inExamples() {
		s.current.steps = append(s.current.steps, l)
		s.current.counts.add(kind)
	}
	if kind == But && s.policy.but != "" {
		s.r.AddRule(s.featureType, s.policy.but, l.Number)
	}
}

// checkPlaceholders binds the placeholders of the buffered steps to the
// Examples headers: every name must be a column, and names must be used in
// column order.
func (s *scanner) checkPlaceholders(headerLine int) {
	sc := s.current
	var tokens []string
	for _, st := range sc.steps {
		tokens = append(tokens, Placeholders(st.Text)...)
	}
	if len(tokens) == 0 {
		return
	}

	column := make(map[string]int, len(sc.headers))
	for i, h := range sc.headers {
		column[h] = i
	}

	reported := make(map[string]bool)
	for _, tok := range tokens {
		if reported[tok] {
			continue
		}
		reported[tok] = true
		if _, ok := column[PlaceholderName(tok)]; !ok {
			s.r.Add(report.PlaceholderMismatch,
				fmt.Sprintf("Placeholder '%s' does not match any column heading in the Examples table (case-sensitive)", tok),
				sc.lineOf(tok, headerLine))
		}
	}

	last := -1
	for _, tok := range tokens {
		pos, ok := column[PlaceholderName(tok)]
		if !ok {
			continue
		}
		if pos < last {
			s.r.Add(report.PlaceholderOrder,
				fmt.Sprintf("Placeholder '%s' used out of sequence relative to Examples table column headings", tok),
				sc.lineOf(tok, headerLine))
		}
		last = max(last, pos)
	}
}

// lineOf returns the line of the first buffered step containing tok.
func (sc *scenario) lineOf(tok string, fallback int) int {
	for _, st := range sc.steps {
		if strings.Contains(st.Text, tok) {
			return st.Number
		}
	}
	return fallback
}

func (s *scanner) spelling(l SourceLine) {
	if !s.speller.Active() {
		return
	}
	for _, w := range SpellCandidates(l.Text) {
		if suggestions, bad := s.speller.Lookup(w); bad {
			s.r.AddMisspelling(w, l.Number, suggestions)
		}
	}
}

func (s *scanner) end(totalLines int) {
	s.finishScenario()
	if !s.hasFeature {
		s.r.Add(report.SyntaxError, "No Feature keyword found in file", 1)
	}
	s.stats.TotalLines = totalLines
	s.r.UpdateStats(s.stats)
}
