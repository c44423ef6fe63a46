package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Turn-opening lines look like markup but are not well formed: quoting and spacing
// vary across the corpus, so each attribute is matched on its own.
var (
	speechIDAttr    = regexp.MustCompile(`SPEAKER\s+ID\s*=\s*"*\s*(\d+)`)
	nameAttr        = regexp.MustCompile(`\bNAME\s*=\s*"([^"]*)"`)
	affiliationAttr = regexp.MustCompile(`\bAFFILIATION\s*=\s*"([^"]*)"`)
	languageAttr    = regexp.MustCompile(`\bLANGUAGE\s*=\s*"\s*([A-Za-z]{2})\s*"`)
)

// TurnAttributes are the pseudo-attributes found on a turn-opening line.
// Values are entity-decoded; the Has flags tell an absent attribute from an empty one.
type TurnAttributes struct {
	SpeechID       string
	Name           string
	Affiliation    string
	Language       string
	HasName        bool
	HasAffiliation bool
	HasLanguage    bool
}

// ParseTurnAttributes extracts the pseudo-attributes from a turn-opening line
func ParseTurnAttributes(line string) TurnAttributes {
	var attrs TurnAttributes

	if m := speechIDAttr.FindStringSubmatch(line); m != nil {
		attrs.SpeechID = m[1]
	}
	if m := nameAttr.FindStringSubmatch(line); m != nil {
		attrs.Name = html.UnescapeString(m[1])
		attrs.HasName = true
	}
	if m := affiliationAttr.FindStringSubmatch(line); m != nil {
		attrs.Affiliation = html.UnescapeString(m[1])
		attrs.HasAffiliation = true
	}
	if m := languageAttr.FindStringSubmatch(line); m != nil {
		attrs.Language = strings.ToUpper(m[1])
		attrs.HasLanguage = true
	}

	return attrs
}
