package model

import "time"

// Config holds all converter settings
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus" mapstructure:"corpus"`
	Processing ProcessingConfig `yaml:"processing" mapstructure:"processing"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// CorpusConfig locates the transcript corpora
type CorpusConfig struct {
	Language   string `yaml:"language" mapstructure:"language"`       // Source corpus language code
	InputRoot  string `yaml:"input_root" mapstructure:"input_root"`   // Holds one directory per language
	OutputRoot string `yaml:"output_root" mapstructure:"output_root"` // XML is written under <root>/<lang>
	File       string `yaml:"file,omitempty" mapstructure:"file"`     // Optional single-file override
}

// ProcessingConfig controls batch execution
type ProcessingConfig struct {
	Workers          int           `yaml:"workers" mapstructure:"workers"`
	FallbackCacheTTL time.Duration `yaml:"fallback_cache_ttl" mapstructure:"fallback_cache_ttl"`
}

// OutputConfig controls optional outputs
type OutputConfig struct {
	SpeakersReport string `yaml:"speakers_report,omitempty" mapstructure:"speakers_report"`
}

// LogConfig controls diagnostics
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Language:   "EN",
			InputRoot:  "./txt",
			OutputRoot: "./xml",
		},
		Processing: ProcessingConfig{
			Workers:          1,
			FallbackCacheTTL: 10 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
