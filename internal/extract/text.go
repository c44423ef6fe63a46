package extract

import (
	"strings"
	"unicode"
)

// lineRules clean each continuation line as it is appended
var lineRules = RuleSet{
	Literal("\u00a0", " "),
	Pattern(`\s+`, " "),
	Literal("[amp]", "&"),
	Literal("[...]", ""),
	Literal("[…]", ""),
	Literal("…", " "),
	Literal("...", " "),
	Pattern(`\[Article[^\]]*\]`, ""),
	Pattern(`\[[^\]]*/[^\]]*\]`, ""),
	Literal("()", ""),
	Literal("[]", ""),
	Literal("[?]", ""),
	Literal("<P>", ""),
}

// spacingRules repair punctuation spacing in the accumulated text
var spacingRules = RuleSet{
	Literal(" . ", ". "),
	Pattern(`([.?!,]) +`, "${1} "),
	Pattern(` +`, " "),
}

// editorialPhrases are procedural annotations in the English-language records:
// votes, minutes, applause and similar stage directions.
var editorialPhrases = []string{
	`\(?Parliament adopted the resolution\)?`,
	`\(?Parliament adopted the Commission proposal\)?`,
	`\(?Parliament adopted the legislative resolution\)?`,
	`\(?Parliament gave its assent\)?`,
	`\(?Parliament rejected the motion for a resolution\)?`,
	`\(?Parliament rejected the[^)]*\)?`,
	`\((?:The )?Parliament[^)]*\)`,
	`\(The [Hh]ouse[^)]*\)`,
	`\(*The Minutes were approved\)*`,
	`\(* *Approval of the [Mm]inutes(?: of the previous sittings?)? *\)*`,
	`\(Explanations? of (?:the )?vote[^)]*\)`,
	`\(For (?:the )?results [^)]*\)`,
	`\(For the outcome [^)]*\)`,
	`\(The explanation[^)]*\)`,
	`\(The Member[^)]*\)`,
	`\(Members[^)]*\)`,
	`\(The meeting was[^)]*\)`,
	`\(The oral amendment was[^)]*\)`,
	`\(The order of business[^)]*\)`,
	`\([Tt]he (?:formal )?sitting [^)]*\)`,
	`\([Tt]he speaker [^)]*\)`,
	`\([Tt]he request [^)]*\)`,
	`\([Tt]he report [^)]*\)`,
	`\([Tt]he session was [^)]*\)`,
	`\(The Commissioner [^)]*\)`,
	`\(The President [^)]*\)`,
	`\(The Assembly [^)]*\)`,
	`\(The amendment [^)]*\)`,
	`\(Text [^)]*\)`,
	`\(Abbreviated [^)]*\)`,
	`\(adopted [^)]*\)`,
	`\(During successive [^)]*\)`,
	`\([Tt]he proposal[^)]*\)`,
	`\(The vote [^)]*\)`,
	`\(Intervention cut short pursuant to[^)]*\)`,
	`\(In successive votes[^)]*\)`,
	`\(Mixed react[^)]*\)`,
	`\(Laughter and applause\)`,
	`\(Laughter\)`,
	`\(*Vigorous applause\)*`,
	`\(*Loud applause\)*`,
	`\([^)]*[Aa]pplause[^)]*\)`,
	`\([^)]*[Ll]aughter[^)]*\)`,
	`\([^)]*[Hh]eckling[^)]*\)`,
	`\(*Murmurs of dissent\)*`,
	`\(Exclamations\)`,
	`\(Muted applause\)`,
	`\(*Adjournment of the session\)*`,
	`Report \([^)]/[^)]*\)`,
	`Draft Amendment No`,
}

var editorialPattern = Alternation(editorialPhrases)

// CleanLine applies the incremental cleanup to one raw continuation line.
// Line terminators become a single trailing space, so consecutive lines join with one space.
func CleanLine(line string) string {
	return lineRules.Apply(line)
}

// FinalizeText cleans an accumulated speech buffer. It repeats the cleanup until the
// text stops changing, so applying it to its own output is a no-op.
func FinalizeText(s string) string {
	for {
		next := finalizeOnce(s)
		if next == s {
			return next
		}
		s = next
	}
}

// Every step either deletes text or leaves it unchanged, so the loop in FinalizeText terminates.
func finalizeOnce(s string) string {
	s = strings.TrimLeft(s, ". ")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = spacingRules.Apply(s)
	return editorialPattern.ReplaceAllString(s, "")
}
