package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/ppiankov/ecpc/internal/extract"
	"github.com/ppiankov/ecpc/internal/fallback"
	"github.com/ppiankov/ecpc/internal/model"
	"github.com/ppiankov/ecpc/internal/validate"
	"github.com/sirupsen/logrus"
)

// FileResult is the outcome of converting one transcript
type FileResult struct {
	Filename     string
	OutputPath   string
	Document     *model.Document
	FallbackHits int // Languages recovered from sibling corpora
	Unresolved   int // Interventions left with an UNKNOWN language
	Violations   int // Broken output invariants, expected to be zero
}

// Speakers returns every speaker mention in the document, in order
func (r *FileResult) Speakers() []*model.Speaker {
	var out []*model.Speaker
	for _, i := range r.Document.Interventions {
		out = append(out, i.Speakers...)
	}
	return out
}

// Converter turns transcripts of one corpus into ECPC documents
type Converter struct {
	input     fs.FS
	language  string
	outputDir string
	lookup    fallback.LanguageLookup
	logger    *logrus.Entry
}

// NewConverter creates a converter reading corpora from input.
// lookup may be nil, in which case unresolved languages stay UNKNOWN.
func NewConverter(cfg *model.Config, input fs.FS, lookup fallback.LanguageLookup, logger *logrus.Entry) *Converter {
	lang := strings.ToUpper(cfg.Corpus.Language)
	return &Converter{
		input:     input,
		language:  lang,
		outputDir: filepath.Join(cfg.Corpus.OutputRoot, strings.ToLower(lang)),
		lookup:    lookup,
		logger:    logger.WithField("corpus", lang),
	}
}

// Convert parses and finalizes one transcript without writing it
func (c *Converter) Convert(filename string) (*FileResult, error) {
	id, err := OutputIdentifier(filename, c.language)
	if err != nil {
		return nil, err
	}

	log := c.logger.WithField("file", filename)

	f, err := c.input.Open(path.Join(strings.ToLower(c.language), filename))
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	interventions, err := extract.NewSegmenter(log).Segment(f)
	if err != nil {
		return nil, fmt.Errorf("segment %s: %w", filename, err)
	}

	result := &FileResult{
		Filename: filename,
		Document: &model.Document{
			SourceFilename: filename,
			Identifier:     id,
			Language:       c.language,
			Interventions:  interventions,
		},
	}

	for _, i := range interventions {
		if i.NeedsLanguageFallback() && c.lookup != nil {
			if code, ok := c.lookup.Lookup(c.language, filename, i.SpeechID); ok {
				i.Language = code
				result.FallbackHits++
			}
		}

		i.Finalize(extract.FinalizeText)

		if i.HasUnknownLanguage() {
			result.Unresolved++
			log.WithField("speech_id", i.SpeechID).WithError(model.ErrUnresolvedLanguage).Debug("Language left unknown")
		}
	}

	for _, v := range validate.Document(result.Document) {
		log.WithField("violation", v.String()).Error("Output invariant broken")
		result.Violations++
	}

	return result, nil
}

// ConvertFile converts one transcript and writes its XML document
func (c *Converter) ConvertFile(ctx context.Context, filename string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := c.Convert(filename)
	if err != nil {
		if errors.Is(err, model.ErrMalformedFilename) {
			c.logger.WithField("file", filename).WithError(err).Warn("Skipping transcript")
		}
		return nil, err
	}

	out, err := WriteDocument(result.Document, c.outputDir)
	if err != nil {
		return nil, err
	}
	result.OutputPath = out

	c.logger.WithFields(logrus.Fields{
		"file":          filename,
		"output":        result.Document.Identifier,
		"interventions": len(result.Document.Interventions),
		"fallback_hits": result.FallbackHits,
		"unresolved":    result.Unresolved,
	}).Info("Converted transcript")

	return result, nil
}
