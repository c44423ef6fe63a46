package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/ppiankov/ecpc/internal/cache"
	"github.com/ppiankov/ecpc/internal/fallback"
	"github.com/ppiankov/ecpc/internal/logging"
	"github.com/ppiankov/ecpc/internal/model"
	"github.com/ppiankov/ecpc/internal/pipeline"
	"github.com/ppiankov/ecpc/internal/worker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one language corpus to ECPC XML",
	Long: `Convert reads every transcript under <input>/<lang>/ and writes one
ECPC XML document per transcript to <output>/<lang>/.

Transcripts are named ep-YY-MM-DD.txt; the output for ep-09-01-12.txt in
the EN corpus is EN20090112.xml. Files with any other name shape are skipped.

Example:
  ecpc convert --language EN --input ./txt --output ./xml
  ecpc convert --language DE --file ep-09-01-12.txt -v
  ecpc convert --workers 4 --speakers-report speakers.yaml`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringP("language", "l", "", "corpus language code (default EN)")
	flags.StringP("file", "f", "", "convert a single transcript of the corpus")
	flags.String("input", "", "root directory holding one directory per language (default ./txt)")
	flags.String("output", "", "root directory for XML output (default ./xml)")
	flags.IntP("workers", "w", 0, "number of transcripts converted concurrently (default 1)")
	flags.String("speakers-report", "", "write a YAML speaker summary to this path")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")

	bindFlag("corpus.language", "language")
	bindFlag("corpus.file", "file")
	bindFlag("corpus.input_root", "input")
	bindFlag("corpus.output_root", "output")
	bindFlag("processing.workers", "workers")
	bindFlag("output.speakers_report", "speakers-report")
	bindFlag("log.level", "log-level")
	bindFlag("log.format", "log-format")
}

func bindFlag(key, flag string) {
	_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
}

// setDefaults registers every config key so env variables and Unmarshal see them
func setDefaults(v *viper.Viper) {
	d := model.DefaultConfig()
	v.SetDefault("corpus.language", d.Corpus.Language)
	v.SetDefault("corpus.input_root", d.Corpus.InputRoot)
	v.SetDefault("corpus.output_root", d.Corpus.OutputRoot)
	v.SetDefault("corpus.file", d.Corpus.File)
	v.SetDefault("processing.workers", d.Processing.Workers)
	v.SetDefault("processing.fallback_cache_ttl", d.Processing.FallbackCacheTTL)
	v.SetDefault("output.speakers_report", d.Output.SpeakersReport)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// loadConfig merges defaults, config file, env and flags, then validates
func loadConfig(v *viper.Viper) (*model.Config, error) {
	setDefaults(v)

	cfg := &model.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Unset flags come through as zero values
	d := model.DefaultConfig()
	if cfg.Corpus.Language == "" {
		cfg.Corpus.Language = d.Corpus.Language
	}
	if cfg.Corpus.InputRoot == "" {
		cfg.Corpus.InputRoot = d.Corpus.InputRoot
	}
	if cfg.Corpus.OutputRoot == "" {
		cfg.Corpus.OutputRoot = d.Corpus.OutputRoot
	}
	if cfg.Processing.Workers < 1 {
		cfg.Processing.Workers = d.Processing.Workers
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = d.Log.Format
	}

	cfg.Corpus.Language = strings.ToUpper(strings.TrimSpace(cfg.Corpus.Language))
	if !model.IsValidLanguage(cfg.Corpus.Language) {
		return nil, fmt.Errorf("unsupported corpus language %q (expected one of %s)",
			cfg.Corpus.Language, strings.Join(model.Languages, ", "))
	}

	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	log := logging.Component(logger, "convert")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	input := os.DirFS(cfg.Corpus.InputRoot)
	names, err := pipeline.ListTranscripts(input, cfg.Corpus.Language, cfg.Corpus.File)
	if err != nil {
		return err
	}

	ttl := cfg.Processing.FallbackCacheTTL
	indexes := cache.NewMemoryCache[fallback.Index](ttl, 2*ttl)
	lookup := fallback.NewSiblingLookup(input, indexes, ttl, logging.Component(logger, "fallback"))

	converter := pipeline.NewConverter(cfg, input, lookup, logging.Component(logger, "pipeline"))
	registry := model.NewSpeakerRegistry()
	batch := worker.NewBatchProcessor(converter, cfg.Processing.Workers, registry, logging.Component(logger, "batch"))

	results := batch.ProcessFiles(ctx, names)
	summary := worker.Summarize(results)

	log.WithFields(logrus.Fields{
		"files":         summary.Files,
		"converted":     summary.Converted,
		"skipped":       summary.Skipped,
		"failed":        summary.Failed,
		"interventions": summary.Interventions,
		"fallback_hits": summary.FallbackHits,
		"unresolved":    summary.Unresolved,
		"violations":    summary.Violations,
		"speakers":      registry.Len(),
	}).Info("Conversion finished")

	if cfg.Output.SpeakersReport != "" {
		if err := pipeline.WriteSpeakerReport(registry, cfg.Output.SpeakersReport); err != nil {
			return err
		}
		log.WithField("path", cfg.Output.SpeakersReport).Info("Wrote speaker report")
	}

	return nil
}
