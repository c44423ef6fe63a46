package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
)

// affiliationConnector keeps the first token after connector phrases such as
// "on behalf of the", dropping any trailing "Group" or other words.
var affiliationConnector = regexp.MustCompile(`^\s*(?:on behalf o[fn]\s+)?(?:for\s+)?(?:the\s+)?(\S+)`)

// affiliationAliases maps historical and misspelled group names to canonical codes.
// Order matters: longer variants are rewritten before their prefixes.
var affiliationAliases = RuleSet{
	Literal("ARE", "ERA"),
	Literal("PPE–DE", "EPP-ED"),
	Literal("PPE-DE", "EPP-ED"),
	Literal("PPE", "EPP-ED"),
	Literal("ALDE-DE", "ALDE"),
	Literal("Verts/ALE", "G/EFA"),
	Literal("PSE", "PES"),
	Literal("PSSE", "PES"),
	Literal("GUE/NGL", "EUL/NGL"),
	Literal("I-EDN", "I-EN"),
	Literal("UPE", "UFE"),
	Literal("TDI", "TGI"),
	Literal("S&amp;D", "S&D"),
	Literal("S-D", "S&D"),
}

// NormalizeAffiliation canonicalizes a raw affiliation fragment.
// It returns false when the result is not in the closed group vocabulary.
func NormalizeAffiliation(raw string) (string, bool) {
	a := strings.ReplaceAll(raw, "(", "")
	a = strings.ReplaceAll(a, ")", "")
	a = strings.Trim(a, ",.–‘v ")

	m := affiliationConnector.FindStringSubmatch(a)
	if m == nil {
		return "", false
	}

	a = affiliationAliases.Apply(m[1])
	if !model.IsValidAffiliation(a) {
		return "", false
	}
	return a, true
}
