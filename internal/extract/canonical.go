package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// nameCorrections fixes OCR damage, missing diacritics and house-style casing in
// speaker names. The entries were verified against the published records.
var nameCorrections = RuleSet{
	Literal(", Member of the Commission", ""),
	Literal("–", "-"),
	Literal(`\\xad`, "-"),
	Literal(`\\xa0`, " "),
	Literal(" the ", " The "),
	Literal(" of ", " Of "),
	Literal("?ratsa", "Kratsa"),
	Literal("?sagaropoulou", "Tsagaropoulou"),
	Literal("Ôsagaropoulou", "Tsagaropoulou"),
	Literal("S<nchez", "Sánchez"),
	Literal("?aramanou", "Karamanou"),
	Literal("Êaramanou", "Karamanou"),
	Literal("I Böhm", "i Böhm"),
	Literal("y Böhm", "i Böhm"),
	Literal("Α", "A"), // Greek capital alpha
	Literal("τ", "T"), // Greek small tau
	Pattern(`\bIoan\b`, "Ioana"),
	Literal("Dalai-Lama", "14th Dalai Lama"),
	Pattern(`\bBethel\b`, "Bethell"),
	Literal("MADL", "Mádl"),
	Pattern(`\bUnd\b`, "und"),
	Pattern(`^.*Vidal-Quadras.*$`, "Alejo Vidal-Quadras Roca"),
}

// CanonicalName trims and repairs a raw speaker name
func CanonicalName(s string) string {
	n := norm.NFC.String(s)
	n = strings.ReplaceAll(n, "\u00a0", " ")
	n = strings.ReplaceAll(n, "\u00ad", "-")
	n = strings.TrimLeft(n, " \t\r\n")
	n = strings.TrimRight(n, " ,-")
	n = whitespaceRun.ReplaceAllString(n, " ")
	return nameCorrections.Apply(n)
}
