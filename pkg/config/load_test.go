package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, `
server:
  listen_address: "0.0.0.0:8000"
  read_timeout: "60s"

processing:
  tokens:
    counter: "simple"
    cache_size: 0
  compression:
    stopword_threshold: 100
    deduplicate: true
    advanced:
      - "Filler phrase removal"
      - "Contraction conversion"

catalog:
  source: "file"
  path: "./pricing.yaml"
  max_age: "720h"

telemetry:
  logging:
    level: "debug"
    format: "text"
  metrics:
    enabled: false
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:8000" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:8000", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 60*time.Second {
		t.Errorf("expected read timeout %v, got %v", 60*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.Processing.Tokens.Counter != "simple" {
		t.Errorf("expected simple counter, got %q", cfg.Processing.Tokens.Counter)
	}
	if cfg.Processing.Tokens.CacheSize != 0 {
		t.Errorf("explicit cache_size 0 should disable the cache, got %d", cfg.Processing.Tokens.CacheSize)
	}
	if cfg.Processing.Compression.StopwordThreshold != 100 {
		t.Errorf("expected stopword threshold 100, got %d", cfg.Processing.Compression.StopwordThreshold)
	}
	if !cfg.Processing.Compression.Deduplicate {
		t.Error("expected deduplicate true")
	}
	if got := cfg.Processing.Compression.Advanced; len(got) != 2 || got[1] != "Contraction conversion" {
		t.Errorf("unexpected advanced passes: %v", got)
	}
	if cfg.Catalog.MaxAge != 720*time.Hour {
		t.Errorf("expected max age 720h, got %v", cfg.Catalog.MaxAge)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("explicit metrics.enabled false should be kept")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}

	// Defaults fill the rest
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Catalog.AuditSchedule != DefaultCatalogAuditSchedule {
		t.Errorf("expected default audit schedule, got %q", cfg.Catalog.AuditSchedule)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("failed to load empty config: %v", err)
	}
	if cfg.Processing.Tokens.CacheSize != DefaultTokensCacheSize {
		t.Errorf("expected default cache size, got %d", cfg.Processing.Tokens.CacheSize)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server:\n  listen_address: [unclosed\n"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadConfig_ValidationError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
telemetry:
  logging:
    level: "verbose"
catalog:
  source: "sqlite"
`))
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	configPath := writeConfig(t, `
server:
  listen_address: "127.0.0.1:8000"
telemetry:
  logging:
    level: "info"
`)

	t.Setenv("TOKENSCOPE_SERVER_LISTEN_ADDRESS", "0.0.0.0:9999")
	t.Setenv("TOKENSCOPE_SERVER_REQUEST_TIMEOUT", "5s")
	t.Setenv("TOKENSCOPE_SERVER_MAX_UPLOAD_BYTES", "2048")
	t.Setenv("TOKENSCOPE_PROCESSING_TOKENS_COUNTER", "simple")
	t.Setenv("TOKENSCOPE_PROCESSING_COMPRESSION_DEDUPLICATE", "true")
	t.Setenv("TOKENSCOPE_PROCESSING_COMPRESSION_ADVANCED", "Filler phrase removal, Number word conversion,")
	t.Setenv("TOKENSCOPE_TELEMETRY_LOGGING_LEVEL", "debug")
	t.Setenv("TOKENSCOPE_TELEMETRY_METRICS_ENABLED", "false")
	t.Setenv("TOKENSCOPE_CATALOG_AUDIT_SCHEDULE", "")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9999" {
		t.Errorf("expected env listen address, got %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("expected env request timeout, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.MaxUploadBytes != 2048 {
		t.Errorf("expected env max upload bytes, got %d", cfg.Server.MaxUploadBytes)
	}
	if cfg.Processing.Tokens.Counter != "simple" {
		t.Errorf("expected env counter, got %q", cfg.Processing.Tokens.Counter)
	}
	if !cfg.Processing.Compression.Deduplicate {
		t.Error("expected env deduplicate")
	}
	if got := cfg.Processing.Compression.Advanced; len(got) != 2 || got[0] != "Filler phrase removal" || got[1] != "Number word conversion" {
		t.Errorf("unexpected advanced passes: %q", got)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected env logging level, got %q", cfg.Telemetry.Logging.Level)
	}
	if cfg.Telemetry.Metrics.Enabled {
		t.Error("expected env to disable metrics")
	}
	if cfg.Catalog.AuditSchedule != "" {
		t.Errorf("expected empty env value to clear the audit schedule, got %q", cfg.Catalog.AuditSchedule)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	configPath := writeConfig(t, "")

	t.Setenv("TOKENSCOPE_SERVER_READ_TIMEOUT", "soon")
	t.Setenv("TOKENSCOPE_PROCESSING_TOKENS_CACHE_SIZE", "lots")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("unparseable duration should be ignored, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Processing.Tokens.CacheSize != DefaultTokensCacheSize {
		t.Errorf("unparseable int should be ignored, got %d", cfg.Processing.Tokens.CacheSize)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidAfterOverride(t *testing.T) {
	t.Setenv("TOKENSCOPE_TELEMETRY_LOGGING_FORMAT", "xml")

	_, err := LoadConfigWithEnvOverrides(writeConfig(t, ""))
	if err == nil {
		t.Fatal("expected validation error after override")
	}
	if !strings.Contains(err.Error(), "after environment overrides") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		t.Setenv("TOKENSCOPE_SERVER_LISTEN_ADDRESS", "127.0.0.1:7000")

		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.ListenAddress != "127.0.0.1:7000" {
			t.Errorf("env override should apply to defaults, got %q", cfg.Server.ListenAddress)
		}
	})

	t.Run("invalid file is still an error", func(t *testing.T) {
		_, err := LoadOrDefault(writeConfig(t, "server: ["))
		if err == nil {
			t.Fatal("expected parse error")
		}
	})
}
