package worker

import (
	"context"
	"errors"

	"github.com/ppiankov/ecpc/internal/model"
	"github.com/ppiankov/ecpc/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// Converter converts one transcript file
type Converter interface {
	ConvertFile(ctx context.Context, filename string) (*pipeline.FileResult, error)
}

// ConvertJob converts a single transcript
type ConvertJob struct {
	Filename  string
	Converter Converter
}

// Execute implements Job
func (j *ConvertJob) Execute(ctx context.Context) Result {
	file, err := j.Converter.ConvertFile(ctx, j.Filename)
	return &ConvertResult{
		Filename: j.Filename,
		File:     file,
		Error:    err,
	}
}

// ConvertResult is the outcome of one ConvertJob
type ConvertResult struct {
	Filename string
	File     *pipeline.FileResult
	Error    error
}

// GetError implements Result
func (r *ConvertResult) GetError() error {
	return r.Error
}

// Skipped reports whether the file was rejected by name rather than failing
func (r *ConvertResult) Skipped() bool {
	return errors.Is(r.Error, model.ErrMalformedFilename)
}

// Summary aggregates one batch run
type Summary struct {
	Files         int
	Converted     int
	Skipped       int
	Failed        int
	Interventions int
	FallbackHits  int
	Unresolved    int
	Violations    int
}

// BatchProcessor converts many transcripts concurrently.
// A failing file never stops the rest of the batch.
type BatchProcessor struct {
	converter Converter
	pool      *Pool
	registry  *model.SpeakerRegistry
	logger    *logrus.Entry
}

// NewBatchProcessor creates a batch processor. registry may be nil.
func NewBatchProcessor(converter Converter, workers int, registry *model.SpeakerRegistry, logger *logrus.Entry) *BatchProcessor {
	return &BatchProcessor{
		converter: converter,
		pool:      NewPool(workers),
		registry:  registry,
		logger:    logger,
	}
}

// ProcessFiles converts filenames and returns one result per file, in input order
func (b *BatchProcessor) ProcessFiles(ctx context.Context, filenames []string) []*ConvertResult {
	jobs := make([]Job, len(filenames))
	for i, name := range filenames {
		jobs[i] = &ConvertJob{Filename: name, Converter: b.converter}
	}

	b.logger.WithFields(logrus.Fields{
		"files":   len(filenames),
		"workers": b.pool.Workers(),
	}).Info("Starting batch")

	raw := b.pool.Run(ctx, jobs)

	results := make([]*ConvertResult, len(raw))
	for i, r := range raw {
		results[i] = r.(*ConvertResult)
		if results[i].Error != nil && !results[i].Skipped() {
			b.logger.WithField("file", results[i].Filename).WithError(results[i].Error).Error("Conversion failed")
		}
		if b.registry != nil && results[i].File != nil {
			b.registry.Add(results[i].File.Speakers()...)
		}
	}
	return results
}

// Summarize counts the outcomes of a batch
func Summarize(results []*ConvertResult) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped():
			s.Skipped++
		case r.Error != nil:
			s.Failed++
		default:
			s.Converted++
			if r.File != nil {
				s.Interventions += len(r.File.Document.Interventions)
				s.FallbackHits += r.File.FallbackHits
				s.Unresolved += r.File.Unresolved
				s.Violations += r.File.Violations
			}
		}
	}
	return s
}
