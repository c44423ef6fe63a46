package model

import "strings"

// Intervention is one spoken turn
type Intervention struct {
	SpeechID         string     // Empty when the opening line carried no id
	Language         string     // Closed-vocabulary code, or Unknown after finalization
	PossibleLanguage string     // Tentative code taken from the affiliation parenthetical
	Speakers         []*Speaker // Zero or more, never deduplicated
	Text             string     // Cleaned speech text, set by Finalize

	buf       strings.Builder
	finalized bool
}

// AppendText adds already line-cleaned text to the accumulation buffer.
// It is a no-op once the intervention has been finalized.
func (i *Intervention) AppendText(s string) {
	if i.finalized {
		return
	}
	i.buf.WriteString(s)
}

// RawText returns the accumulated, not yet finalized text
func (i *Intervention) RawText() string {
	return i.buf.String()
}

// Finalize resolves the intervention exactly once.
// clean is applied to the accumulated buffer; language and every speaker affiliation
// degrade to Unknown when unresolved. It reports false if already finalized.
func (i *Intervention) Finalize(clean func(string) string) bool {
	if i.finalized {
		return false
	}
	i.finalized = true

	i.Text = clean(i.buf.String())
	i.buf.Reset()

	if i.Language == "" {
		i.Language = Unknown
	}
	for _, s := range i.Speakers {
		if s.Affiliation == "" {
			s.Affiliation = Unknown
		}
	}
	return true
}

// Finalized reports whether Finalize has run
func (i *Intervention) Finalized() bool {
	return i.finalized
}

// NeedsLanguageFallback reports whether a cross-file lookup could still resolve the language
func (i *Intervention) NeedsLanguageFallback() bool {
	return !i.finalized && i.Language == "" && i.SpeechID != ""
}

// HasUnknownLanguage reports whether the language is still unresolved after finalization
func (i *Intervention) HasUnknownLanguage() bool {
	return i.Language == Unknown
}
