package parser

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Keywords are never reported as repeated or misspelled.
var keywords = map[string]bool{
	"Feature":    true,
	"Scenario":   true,
	"Given":      true,
	"When":       true,
	"Then":       true,
	"And":        true,
	"But":        true,
	"Background": true,
	"Examples":   true,
}

func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// RepeatedWords returns the word of each adjacent equal pair in masked text,
// once per pair.
func RepeatedWords(masked string) []string {
	words := Words(masked)
	var out []string
	for i := 0; i+1 < len(words); i++ {
		if words[i] == words[i+1] && !keywords[words[i]] {
			out = append(out, words[i])
		}
	}
	return out
}

// SpellCandidates returns the lowercased words of a line worth checking, in
// first-seen order without duplicates. Placeholders, literals and apostrophes
// are removed first.
func SpellCandidates(text string) []string {
	cleaned := strings.ReplaceAll(Mask(text), "'", "")
	seen := make(map[string]bool)
	var out []string
	for _, w := range Words(cleaned) {
		if keywords[w] {
			continue
		}
		lw := strings.ToLower(w)
		if seen[lw] {
			continue
		}
		seen[lw] = true
		out = append(out, lw)
	}
	return out
}
