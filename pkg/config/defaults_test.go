package config

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.ListenAddress != DefaultListenAddress {
					t.Errorf("expected listen address %q, got %q", DefaultListenAddress, cfg.Server.ListenAddress)
				}
				if cfg.Server.ReadTimeout != DefaultReadTimeout {
					t.Errorf("expected read timeout %v, got %v", DefaultReadTimeout, cfg.Server.ReadTimeout)
				}
				if cfg.Server.WriteTimeout != DefaultWriteTimeout {
					t.Errorf("expected write timeout %v, got %v", DefaultWriteTimeout, cfg.Server.WriteTimeout)
				}
				if cfg.Server.MaxUploadBytes != DefaultMaxUploadBytes {
					t.Errorf("expected max upload bytes %d, got %d", DefaultMaxUploadBytes, cfg.Server.MaxUploadBytes)
				}
				if cfg.Processing.Tokens.Counter != DefaultTokensCounter {
					t.Errorf("expected counter %q, got %q", DefaultTokensCounter, cfg.Processing.Tokens.Counter)
				}
				if cfg.Processing.Tokens.Model != DefaultTokensModel {
					t.Errorf("expected model %q, got %q", DefaultTokensModel, cfg.Processing.Tokens.Model)
				}
				if cfg.Processing.Tokens.Models["default"] != DefaultTokensCharsPerToken {
					t.Errorf("expected default ratio %v, got %v", DefaultTokensCharsPerToken, cfg.Processing.Tokens.Models["default"])
				}
				if cfg.Processing.Compression.StopwordThreshold != DefaultStopwordThreshold {
					t.Errorf("expected stopword threshold %d, got %d", DefaultStopwordThreshold, cfg.Processing.Compression.StopwordThreshold)
				}
				if cfg.Catalog.Source != DefaultCatalogSource {
					t.Errorf("expected catalog source %q, got %q", DefaultCatalogSource, cfg.Catalog.Source)
				}
				if cfg.Catalog.MaxAge != DefaultCatalogMaxAge {
					t.Errorf("expected catalog max age %v, got %v", DefaultCatalogMaxAge, cfg.Catalog.MaxAge)
				}
				if cfg.Telemetry.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Telemetry.Logging.Level)
				}
				if cfg.Telemetry.Metrics.Path != DefaultPrometheusPath {
					t.Errorf("expected prometheus path %q, got %q", DefaultPrometheusPath, cfg.Telemetry.Metrics.Path)
				}
				if cfg.Telemetry.Tracing.SampleRatio != DefaultTracingSamplingRate {
					t.Errorf("expected sample ratio %v, got %v", DefaultTracingSamplingRate, cfg.Telemetry.Tracing.SampleRatio)
				}
				if cfg.Telemetry.Health.ReadinessPath != DefaultReadinessPath {
					t.Errorf("expected readiness path %q, got %q", DefaultReadinessPath, cfg.Telemetry.Health.ReadinessPath)
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Server: ServerConfig{
					ListenAddress:  "192.168.1.1:9090",
					ReadTimeout:    60 * time.Second,
					MaxUploadBytes: 1024,
				},
				Processing: ProcessingConfig{
					Tokens: TokensConfig{
						Counter: "simple",
						Models:  map[string]float64{"default": 3.0},
					},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.ListenAddress != "192.168.1.1:9090" {
					t.Error("existing listen address was overwritten")
				}
				if cfg.Server.ReadTimeout != 60*time.Second {
					t.Error("existing read timeout was overwritten")
				}
				if cfg.Server.MaxUploadBytes != 1024 {
					t.Error("existing max upload bytes was overwritten")
				}
				if cfg.Processing.Tokens.Counter != "simple" {
					t.Error("existing counter was overwritten")
				}
				if len(cfg.Processing.Tokens.Models) != 1 {
					t.Error("existing model ratios were overwritten")
				}
				// Unset fields still get defaults
				if cfg.Server.WriteTimeout != DefaultWriteTimeout {
					t.Errorf("expected write timeout %v, got %v", DefaultWriteTimeout, cfg.Server.WriteTimeout)
				}
			},
		},
		{
			name:  "zero-meaningful fields are left alone",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Processing.Tokens.CacheSize != 0 {
					t.Errorf("ApplyDefaults should not enable the cache, got %d", cfg.Processing.Tokens.CacheSize)
				}
				if cfg.Catalog.AuditSchedule != "" {
					t.Errorf("ApplyDefaults should not set an audit schedule, got %q", cfg.Catalog.AuditSchedule)
				}
				if cfg.Telemetry.Metrics.Enabled {
					t.Error("ApplyDefaults should not flip booleans")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	first := cfg.Server

	ApplyDefaults(&cfg)
	if cfg.Server != first {
		t.Error("ApplyDefaults should be idempotent")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Processing.Tokens.CacheSize != DefaultTokensCacheSize {
		t.Errorf("expected cache size %d, got %d", DefaultTokensCacheSize, cfg.Processing.Tokens.CacheSize)
	}
	if cfg.Catalog.AuditSchedule != DefaultCatalogAuditSchedule {
		t.Errorf("expected audit schedule %q, got %q", DefaultCatalogAuditSchedule, cfg.Catalog.AuditSchedule)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
	if cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing disabled by default")
	}
	if cfg.Processing.Compression.Deduplicate {
		t.Error("expected deduplication disabled by default")
	}
	if len(cfg.Processing.Compression.Advanced) != 0 {
		t.Errorf("expected no advanced passes, got %v", cfg.Processing.Compression.Advanced)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
