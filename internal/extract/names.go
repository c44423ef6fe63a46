package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
	"github.com/sirupsen/logrus"
)

var (
	// "Smith (PES)" -> name "Smith", affiliation fragment "PES"
	nameAffiliationPattern = regexp.MustCompile(`^(.+) +\( *(\S+) *\)`)
	parentheticalPattern   = regexp.MustCompile(`^\((.*)\)`)
)

// Name fields starting with these hold procedural metadata, not names
var disqualifyingPrefixes = []string{
	"on ", "Recommendation", "1", "-", "[", "*", "Draft", "&", "European", "Motion", "and",
}

// Lower-cased substrings that mark a name field as metadata
var disqualifyingSubstrings = []string{
	"andlt", "taken over", "on behalf of", "proposal", "replaced by",
}

// Corrections that must happen before splitting because they move commas
var splitCorrections = RuleSet{
	Literal("Róża, ", "Róża "),
	Literal(" )", ")"),
}

var conjunctionTokens = []string{" and ", " et ", " & "}

var conjunctionRules = RuleSet{
	Literal(" & ", ","),
	Literal(" and ", ","),
	Literal(" et ", ","),
}

// nameRule is one case of the name decision procedure.
// apply returns ok=false when the case does not match the segments.
type nameRule struct {
	name  string
	apply func(segments []string) (speakers []*model.Speaker, ok bool)
}

// nameRules are tried in priority order; the last one always applies
var nameRules = []nameRule{
	{"empty", ruleEmpty},
	{"joint-conjunction", ruleJointConjunction},
	{"single", ruleSingle},
	{"trailing-affiliation", ruleTrailingAffiliation},
	{"two-speakers", ruleTwoSpeakers},
	{"lastname-firstname-affiliated", ruleLastnameFirstnameAffiliated},
	{"lastname-firstname", ruleLastnameFirstname},
	{"shared-affiliation", ruleSharedAffiliation},
}

// NameParser splits a raw name attribute into speakers
type NameParser struct {
	logger *logrus.Entry
}

// NewNameParser creates a name parser logging case selection at debug level
func NewNameParser(logger *logrus.Entry) *NameParser {
	return &NameParser{logger: logger}
}

// Parse returns the speakers named by raw. A disqualified or empty field yields none.
func (p *NameParser) Parse(raw string) []*model.Speaker {
	if IsDisqualifiedName(raw) {
		p.logger.WithField("raw", raw).Debug("Name field holds metadata")
		return nil
	}

	segments := SplitNames(raw)
	for _, rule := range nameRules {
		speakers, ok := rule.apply(segments)
		if !ok {
			continue
		}
		p.logger.WithFields(logrus.Fields{
			"case":     rule.name,
			"raw":      raw,
			"speakers": len(speakers),
		}).Debug("Parsed names")
		return speakers
	}
	return nil
}

// IsDisqualifiedName reports whether a name field holds metadata instead of names
func IsDisqualifiedName(raw string) bool {
	n := strings.TrimSpace(raw)
	for _, prefix := range disqualifyingPrefixes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	lower := strings.ToLower(n)
	for _, sub := range disqualifyingSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// SplitNames splits a name field on commas into trimmed, non-empty segments
func SplitNames(s string) []string {
	n := splitCorrections.Apply(strings.TrimSpace(s))
	n = strings.TrimRight(n, " ,")
	if n == "" {
		return nil
	}

	var segments []string
	for _, part := range strings.Split(n, ",") {
		part = strings.Trim(part, " –-.?")
		if part == "" {
			continue
		}
		if strings.Count(part, "(") > strings.Count(part, ")") {
			part += ")"
		}
		segments = append(segments, part)
	}
	return segments
}

func hasConjunction(segments []string) bool {
	for _, s := range segments {
		for _, c := range conjunctionTokens {
			if strings.Contains(s, c) {
				return true
			}
		}
	}
	return false
}

func isParenthetical(segment string) bool {
	return parentheticalPattern.MatchString(segment)
}

// splitAffiliation separates a trailing "(GROUP)" from a name segment.
// The parenthetical is dropped from the name even when it is not a valid group.
func splitAffiliation(segment string) (name, affiliation string) {
	m := nameAffiliationPattern.FindStringSubmatch(segment)
	if m == nil {
		return segment, ""
	}
	name = strings.TrimRight(m[1], " ")
	affiliation, _ = NormalizeAffiliation(m[2])
	return name, affiliation
}

// speakerFromSegment builds a speaker, taking a tentative affiliation from the segment
func speakerFromSegment(segment string) *model.Speaker {
	name, affiliation := splitAffiliation(segment)
	return model.NewSpeaker(CanonicalName(name), affiliation)
}

func ruleEmpty(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 0 {
		return nil, false
	}
	return nil, true
}

// "Smith and Jones (PES)": two speakers; an affiliation stated once covers both
func ruleJointConjunction(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 1 || !hasConjunction(segments) {
		return nil, false
	}
	parts := SplitNames(conjunctionRules.Apply(segments[0]))
	if len(parts) != 2 {
		return nil, false
	}
	first := speakerFromSegment(parts[0])
	second := speakerFromSegment(parts[1])
	if second.PossibleAffiliation != "" && first.PossibleAffiliation == "" {
		first.PossibleAffiliation = second.PossibleAffiliation
	}
	return []*model.Speaker{first, second}, true
}

// "Smith (PES)" or "Smith"
func ruleSingle(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 1 || hasConjunction(segments) {
		return nil, false
	}
	return []*model.Speaker{speakerFromSegment(segments[0])}, true
}

// "Smith, (PES)": the second segment is only the first speaker's affiliation
func ruleTrailingAffiliation(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 2 {
		return nil, false
	}
	m := parentheticalPattern.FindStringSubmatch(segments[1])
	if m == nil {
		return nil, false
	}
	affiliation, ok := NormalizeAffiliation(m[1])
	if !ok {
		return nil, false
	}
	return []*model.Speaker{model.NewSpeaker(CanonicalName(segments[0]), affiliation)}, true
}

// "Smith (PES), Jones": the first segment is complete, so the second is someone else
func ruleTwoSpeakers(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 2 || isParenthetical(segments[1]) {
		return nil, false
	}
	first := speakerFromSegment(segments[0])
	if first.PossibleAffiliation == "" {
		return nil, false
	}
	return []*model.Speaker{first, speakerFromSegment(segments[1])}, true
}

// "Smith, Jane (PES)": one speaker written lastname first.
// Positional guess only; nothing in the field confirms the ordering.
func ruleLastnameFirstnameAffiliated(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 2 || isParenthetical(segments[1]) {
		return nil, false
	}
	name, affiliation := splitAffiliation(segments[1])
	if affiliation == "" || len(strings.Fields(segments[0])) != 1 {
		return nil, false
	}
	return []*model.Speaker{model.NewSpeaker(CanonicalName(name+" "+segments[0]), affiliation)}, true
}

// "Smith, Jane": assumed lastname, firstname
func ruleLastnameFirstname(segments []string) ([]*model.Speaker, bool) {
	if len(segments) != 2 || isParenthetical(segments[1]) || hasConjunction(segments) {
		return nil, false
	}
	name, affiliation := splitAffiliation(segments[1])
	speaker := speakerFromSegment(name + " " + segments[0])
	if speaker.PossibleAffiliation == "" {
		speaker.PossibleAffiliation = affiliation
	}
	return []*model.Speaker{speaker}, true
}

// "Alpha, Beta and Gamma (EPP-ED)": every speaker without an affiliation of its own
// takes the next one stated after it.
func ruleSharedAffiliation(segments []string) ([]*model.Speaker, bool) {
	names := segments
	if hasConjunction(names) {
		names = SplitNames(conjunctionRules.Apply(strings.Join(names, ",")))
	}

	speakers := make([]*model.Speaker, len(names))
	last := ""
	for i := len(names) - 1; i >= 0; i-- {
		s := speakerFromSegment(names[i])
		if s.PossibleAffiliation == "" {
			s.PossibleAffiliation = last
		}
		last = s.PossibleAffiliation
		speakers[i] = s
	}
	return speakers, true
}
