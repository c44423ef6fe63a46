package extract

import (
	"regexp"
	"strings"
)

// Rule is a single text rewrite. Literal rules replace every occurrence of a fixed
// string; pattern rules replace regexp matches, with $n expansion.
type Rule struct {
	literal string
	pattern *regexp.Regexp
	replace string
}

// Literal creates a rule replacing every occurrence of old with new
func Literal(old, new string) Rule {
	return Rule{literal: old, replace: new}
}

// Pattern creates a rule replacing matches of expr. It panics on an invalid expression.
func Pattern(expr, replace string) Rule {
	return Rule{pattern: regexp.MustCompile(expr), replace: replace}
}

// Apply rewrites s
func (r Rule) Apply(s string) string {
	if r.pattern != nil {
		return r.pattern.ReplaceAllString(s, r.replace)
	}
	if r.literal == "" {
		return s
	}
	return strings.ReplaceAll(s, r.literal, r.replace)
}

// RuleSet applies rules in order, each to the output of the previous one
type RuleSet []Rule

// Apply rewrites s with every rule in order
func (rs RuleSet) Apply(s string) string {
	for _, r := range rs {
		s = r.Apply(s)
	}
	return s
}

// Alternation compiles patterns into one expression so a single pass removes
// any of them without matches overlapping.
func Alternation(patterns []string) *regexp.Regexp {
	return regexp.MustCompile("(?:" + strings.Join(patterns, "|") + ")")
}
