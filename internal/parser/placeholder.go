package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// <"name"> binds a step to an Examples column.
	placeholderPattern = regexp.MustCompile(`<"[^"]+">`)
	// "value" is a fixed literal.
	fixedValuePattern = regexp.MustCompile(`"[^"]*"`)
	// 'name' is the single-quoted form people write by mistake.
	quotedSpanPattern = regexp.MustCompile(`'[^']*'`)
	unclosedPattern   = regexp.MustCompile(`'<[^<>'\s]*>`)
	unopenedPattern   = regexp.MustCompile(`<[^<>'\s]*>'`)
)

// Placeholders returns the valid placeholder tokens of text in order,
// duplicates included.
func Placeholders(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// PlaceholderName strips the <"…"> wrapper.
func PlaceholderName(token string) string {
	return strings.Trim(strings.Trim(token, "<>"), `"`)
}

// Mask removes placeholders and fixed literals so that lexical checks only
// see prose.
func Mask(text string) string {
	text = placeholderPattern.ReplaceAllString(text, "")
	return fixedValuePattern.ReplaceAllString(text, "")
}

// InvalidPlaceholders describes every malformed placeholder on the line:
// single-quoted spans first, then angle tokens with only one quote.
func InvalidPlaceholders(text string) []string {
	var out []string
	for _, span := range quotedSpanPattern.FindAllString(text, -1) {
		name := strings.Trim(span, "'")
		out = append(out, fmt.Sprintf(`Placeholder '%s' should use angle brackets with double quotes (e.g., <"%s">) instead of single quotes`, span, name))
	}

	rest := quotedSpanPattern.ReplaceAllString(text, " ")
	for _, tok := range unclosedPattern.FindAllString(rest, -1) {
		out = append(out, fmt.Sprintf("Placeholder '%s' is missing a closing quote", tok))
	}
	for _, tok := range unopenedPattern.FindAllString(rest, -1) {
		out = append(out, fmt.Sprintf("Placeholder '%s' is missing an opening quote", tok))
	}
	return out
}
