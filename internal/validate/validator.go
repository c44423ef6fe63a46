package validate

import (
	"fmt"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
)

// Violation is one broken output invariant in a finalized document
type Violation struct {
	Intervention int    // Zero-based position in the document
	SpeechID     string // May be empty
	Field        string // language, affiliation, name, text or state
	Value        string
}

func (v Violation) String() string {
	return fmt.Sprintf("intervention %d (speech %q): invalid %s %q", v.Intervention, v.SpeechID, v.Field, v.Value)
}

// Document checks that every intervention of doc is finalized and that every
// language and affiliation is in its vocabulary or UNKNOWN. Names must be
// non-empty and free of surrounding whitespace.
func Document(doc *model.Document) []Violation {
	var out []Violation

	for n, i := range doc.Interventions {
		add := func(field, value string) {
			out = append(out, Violation{Intervention: n, SpeechID: i.SpeechID, Field: field, Value: value})
		}

		if !i.Finalized() {
			add("state", "not finalized")
			continue
		}
		if i.Language != model.Unknown && !model.IsValidLanguage(i.Language) {
			add("language", i.Language)
		}
		if strings.TrimSpace(i.Text) != i.Text {
			add("text", i.Text)
		}

		for _, s := range i.Speakers {
			if s.Name == "" || strings.TrimSpace(s.Name) != s.Name {
				add("name", s.Name)
			}
			if s.Affiliation != model.Unknown && !model.IsValidAffiliation(s.Affiliation) {
				add("affiliation", s.Affiliation)
			}
		}
	}

	return out
}
