package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Corpus.Language != "EN" {
		t.Errorf("expected EN, got %s", cfg.Corpus.Language)
	}
	if cfg.Corpus.InputRoot != "./txt" || cfg.Corpus.OutputRoot != "./xml" {
		t.Errorf("unexpected roots %s, %s", cfg.Corpus.InputRoot, cfg.Corpus.OutputRoot)
	}
	if cfg.Processing.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Processing.Workers)
	}
	if cfg.Processing.FallbackCacheTTL != 10*time.Minute {
		t.Errorf("expected 10m TTL, got %v", cfg.Processing.FallbackCacheTTL)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "corpus:\n  language: de\n  input_root: /data/txt\nprocessing:\n  workers: 4\n  fallback_cache_ttl: 30s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}

	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Corpus.Language != "DE" {
		t.Errorf("expected DE, got %s", cfg.Corpus.Language)
	}
	if cfg.Corpus.InputRoot != "/data/txt" {
		t.Errorf("expected /data/txt, got %s", cfg.Corpus.InputRoot)
	}
	if cfg.Corpus.OutputRoot != "./xml" {
		t.Errorf("expected default output root, got %s", cfg.Corpus.OutputRoot)
	}
	if cfg.Processing.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Processing.Workers)
	}
	if cfg.Processing.FallbackCacheTTL != 30*time.Second {
		t.Errorf("expected 30s TTL, got %v", cfg.Processing.FallbackCacheTTL)
	}
}

func TestLoadConfig_InvalidLanguage(t *testing.T) {
	v := viper.New()
	v.Set("corpus.language", "XX")

	_, err := loadConfig(v)
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if !strings.Contains(err.Error(), "XX") {
		t.Errorf("expected error to name the language, got %v", err)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ecpc", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("written config does not parse: %v", err)
	}
	if got := v.GetString("corpus.language"); got != "EN" {
		t.Errorf("expected EN, got %s", got)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("expected error when config already exists")
	}
}
