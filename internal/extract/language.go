package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
)

// languageConfusables corrects language codes seen in the corpus.
// Each was verified by cross-referencing the other language versions; an empty
// replacement marks a code that carries no usable signal.
var languageConfusables = RuleSet{
	Literal("SI", "SL"),
	Literal("NI", "FR"),
	Literal("GR", "EL"),
	Literal("ER", "EL"),
	Literal("SP", "ES"),
	Literal("NO", "NL"),
	Literal("IN", "IT"),
	Literal("UK", "EN"),
	Literal("UN", "EN"),
	Literal("CZ", "CS"),
	Literal("DK", "DA"),
	Literal("CA", ""),
	Literal("EM", ""),
}

var possibleLanguagePattern = regexp.MustCompile(`^\(\s*([A-Z][A-Z])\s*\)`)

// CorrectLanguage applies the confusable-code table to a two-letter code
func CorrectLanguage(code string) string {
	return languageConfusables.Apply(strings.ToUpper(strings.TrimSpace(code)))
}

// ResolveLanguage corrects and validates a primary language code
func ResolveLanguage(code string) (string, bool) {
	c := CorrectLanguage(code)
	if !model.IsValidLanguage(c) {
		return "", false
	}
	return c, true
}

// LanguageOrUnknown is ResolveLanguage degraded to the Unknown sentinel
func LanguageOrUnknown(code string) string {
	if c, ok := ResolveLanguage(code); ok {
		return c
	}
	return model.Unknown
}

// PossibleLanguage reads a tentative language from a "(DE)" style parenthetical
// at the very start of an affiliation fragment. It also returns the fragment with
// that parenthetical removed.
func PossibleLanguage(affiliation string) (code string, rest string, ok bool) {
	loc := possibleLanguagePattern.FindStringSubmatchIndex(affiliation)
	if loc == nil {
		return "", affiliation, false
	}
	code = affiliation[loc[2]:loc[3]]
	if !model.IsValidLanguage(code) {
		return "", affiliation, false
	}
	return code, strings.TrimSpace(affiliation[loc[1]:]), true
}
