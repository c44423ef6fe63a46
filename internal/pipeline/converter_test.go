package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ppiankov/ecpc/internal/fallback"
	"github.com/ppiankov/ecpc/internal/logging"
	"github.com/ppiankov/ecpc/internal/model"
)

const transcriptName = "ep-09-01-12.txt"

const enTranscript = `<CHAPTER ID=1>
Resumption of the session
<SPEAKER ID="1" NAME="President">
The sitting is open.
<SPEAKER ID="2" LANGUAGE="DE" NAME="Schmidt (PSE)">
Thank you & goodbye.
`

func newTestConverter(t *testing.T, fsys fstest.MapFS) (*Converter, string) {
	t.Helper()

	out := t.TempDir()
	cfg := model.DefaultConfig()
	cfg.Corpus.OutputRoot = out

	lookup := fallback.NewSiblingLookup(fsys, nil, 0, logging.Discard())
	return NewConverter(cfg, fsys, lookup, logging.Discard()), out
}

func TestConverter_UnresolvedLanguageIsUnknown(t *testing.T) {
	c, _ := newTestConverter(t, fstest.MapFS{
		"en/" + transcriptName: {Data: []byte(enTranscript)},
	})

	result, err := c.Convert(transcriptName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := result.Document
	if doc.Identifier != "EN20090112.xml" {
		t.Errorf("expected EN20090112.xml, got %s", doc.Identifier)
	}
	if len(doc.Interventions) != 2 {
		t.Fatalf("expected 2 interventions, got %d", len(doc.Interventions))
	}

	first := doc.Interventions[0]
	if first.Language != model.Unknown {
		t.Errorf("expected UNKNOWN language, got %s", first.Language)
	}
	if first.Speakers[0].Affiliation != model.Unknown {
		t.Errorf("expected UNKNOWN affiliation, got %s", first.Speakers[0].Affiliation)
	}
	if first.Text != "The sitting is open." {
		t.Errorf("unexpected text %q", first.Text)
	}

	second := doc.Interventions[1]
	if second.Language != "DE" {
		t.Errorf("expected DE, got %s", second.Language)
	}
	if second.Speakers[0].Name != "Schmidt" || second.Speakers[0].Affiliation != "PES" {
		t.Errorf("expected Schmidt/PES, got %s/%s", second.Speakers[0].Name, second.Speakers[0].Affiliation)
	}

	if result.Unresolved != 1 || result.FallbackHits != 0 {
		t.Errorf("expected 1 unresolved and 0 hits, got %d and %d", result.Unresolved, result.FallbackHits)
	}
	if result.Violations != 0 {
		t.Errorf("expected no invariant violations, got %d", result.Violations)
	}
	for _, i := range doc.Interventions {
		if !i.Finalized() {
			t.Error("expected every intervention to be finalized")
		}
	}
}

func TestConverter_SiblingFallback(t *testing.T) {
	c, _ := newTestConverter(t, fstest.MapFS{
		"en/" + transcriptName: {Data: []byte(enTranscript)},
		"fr/" + transcriptName: {Data: []byte(`<SPEAKER ID="1" LANGUAGE="FR" NAME="Président">` + "\n")},
	})

	result, err := c.Convert(transcriptName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := result.Document.Interventions[0].Language; got != "FR" {
		t.Errorf("expected FR from sibling corpus, got %s", got)
	}
	if result.FallbackHits != 1 || result.Unresolved != 0 {
		t.Errorf("expected 1 hit and 0 unresolved, got %d and %d", result.FallbackHits, result.Unresolved)
	}
}

func TestConverter_NilLookup(t *testing.T) {
	fsys := fstest.MapFS{
		"en/" + transcriptName: {Data: []byte(enTranscript)},
		"fr/" + transcriptName: {Data: []byte(`<SPEAKER ID="1" LANGUAGE="FR" NAME="Président">` + "\n")},
	}
	cfg := model.DefaultConfig()
	c := NewConverter(cfg, fsys, nil, logging.Discard())

	result, err := c.Convert(transcriptName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Document.Interventions[0].Language; got != model.Unknown {
		t.Errorf("expected UNKNOWN without lookup, got %s", got)
	}
}

func TestConverter_Errors(t *testing.T) {
	c, _ := newTestConverter(t, fstest.MapFS{})

	if _, err := c.Convert("ep-09-01-12-extra.txt"); !errors.Is(err, model.ErrMalformedFilename) {
		t.Errorf("expected ErrMalformedFilename, got %v", err)
	}
	if _, err := c.Convert(transcriptName); err == nil {
		t.Error("expected error for missing transcript")
	}
}

func TestConverter_ConvertFileWritesXML(t *testing.T) {
	c, out := newTestConverter(t, fstest.MapFS{
		"en/" + transcriptName: {Data: []byte(enTranscript)},
		"it/" + transcriptName: {Data: []byte(`<SPEAKER ID="1" LANGUAGE="IT" NAME="Presidente">` + "\n")},
	})

	result, err := c.ConvertFile(context.Background(), transcriptName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPath := filepath.Join(out, "en", "EN20090112.xml")
	if result.OutputPath != expectedPath {
		t.Errorf("expected %s, got %s", expectedPath, result.OutputPath)
	}

	data, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	xml := string(data)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<ecpc_EP>`,
		`<header filename="EN20090112.xml" language="EN"></header>`,
		`<name>President</name>`,
		`<affiliation EPparty="UNKNOWN"></affiliation>`,
		`<affiliation EPparty="PES"></affiliation>`,
		`<speech ref="s1" language="IT">The sitting is open.</speech>`,
		`<speech ref="s2" language="DE">Thank you &amp; goodbye.</speech>`,
		`<back></back>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("expected output to contain %q\n%s", want, xml)
		}
	}

	if n := len(result.Speakers()); n != 2 {
		t.Errorf("expected 2 speaker mentions, got %d", n)
	}
}

func TestConverter_ConvertFileCancelled(t *testing.T) {
	c, _ := newTestConverter(t, fstest.MapFS{
		"en/" + transcriptName: {Data: []byte(enTranscript)},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.ConvertFile(ctx, transcriptName); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
