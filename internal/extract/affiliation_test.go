package extract

import (
	"testing"

	"github.com/ppiankov/ecpc/internal/model"
)

func TestNormalizeAffiliation_Aliases(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"ARE", "ERA"},
		{"PPE–DE", "EPP-ED"},
		{"PPE-DE", "EPP-ED"},
		{"PPE", "EPP-ED"},
		{"ALDE-DE", "ALDE"},
		{"Verts/ALE", "G/EFA"},
		{"PSE", "PES"},
		{"PSSE", "PES"},
		{"GUE/NGL", "EUL/NGL"},
		{"I-EDN", "I-EN"},
		{"UPE", "UFE"},
		{"TDI", "TGI"},
		{"S&amp;D", "S&D"},
		{"S-D", "S&D"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeAffiliation(tt.raw)
			if !ok {
				t.Fatalf("expected %q to normalize", tt.raw)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNormalizeAffiliation_AliasTargetsAreCanonical(t *testing.T) {
	for _, rule := range affiliationAliases {
		if !model.IsValidAffiliation(rule.replace) {
			t.Errorf("alias %q maps outside the vocabulary: %q", rule.literal, rule.replace)
		}
	}
}

func TestNormalizeAffiliation_CanonicalPassThrough(t *testing.T) {
	for _, code := range model.Affiliations {
		got, ok := NormalizeAffiliation(code)
		if !ok || got != code {
			t.Errorf("expected %s to pass through, got %q (ok=%v)", code, got, ok)
		}
	}
}

func TestNormalizeAffiliation_Connectors(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"(PSE)", "PES"},
		{"on behalf of the PPE-DE Group", "EPP-ED"},
		{"on behalf on the Verts/ALE Group", "G/EFA"},
		{"for the ELDR Group", "ELDR"},
		{"the UEN", "UEN"},
		{"(NI).", "NI"},
		{" , PES , ", "PES"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeAffiliation(tt.raw)
			if !ok {
				t.Fatalf("expected %q to normalize", tt.raw)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestNormalizeAffiliation_Rejects(t *testing.T) {
	for _, raw := range []string{"", "()", "XYZ", "Commission", "(DE)", "Group"} {
		if got, ok := NormalizeAffiliation(raw); ok {
			t.Errorf("expected %q to be rejected, got %q", raw, got)
		}
	}
}
