package extract

import "testing"

func TestRuleSet_AppliesInOrder(t *testing.T) {
	rules := RuleSet{
		Literal("ab", "b"),
		Literal("b", "c"),
		Pattern(`c+`, "d"),
	}

	if got := rules.Apply("aabab"); got != "d" {
		t.Errorf("expected %q, got %q", "d", got)
	}
}

func TestRule_EmptyLiteralIsNoop(t *testing.T) {
	if got := Literal("", "x").Apply("abc"); got != "abc" {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestRule_PatternExpansion(t *testing.T) {
	r := Pattern(`(\w+)@(\w+)`, "${2}:${1}")
	if got := r.Apply("user@host"); got != "host:user" {
		t.Errorf("expected host:user, got %q", got)
	}
}

func TestAlternation_SinglePass(t *testing.T) {
	re := Alternation([]string{`\(Applause\)`, `\([^)]*pplause[^)]*\)`})
	if got := re.ReplaceAllString("a (Applause) b (Loud applause) c", ""); got != "a  b  c" {
		t.Errorf("unexpected result %q", got)
	}
}
