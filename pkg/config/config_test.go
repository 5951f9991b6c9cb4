package config

import (
	"testing"
	"time"
)

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig().Build()

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("expected listen address %q, got %q", DefaultListenAddress, cfg.Server.ListenAddress)
	}
	if cfg.Processing.Tokens.Counter != "simple" {
		t.Errorf("expected simple counter, got %q", cfg.Processing.Tokens.Counter)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("test config should be valid: %v", err)
	}
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewTestConfig().
		WithListenAddress("0.0.0.0:9090").
		WithRequestTimeout(5*time.Second).
		WithAdvanced("Filler phrase removal").
		WithCatalog("file", "pricing.yaml").
		WithLogging("debug", "text").
		Build()

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:9090", cfg.Server.ListenAddress)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("expected request timeout 5s, got %v", cfg.Server.RequestTimeout)
	}
	if len(cfg.Processing.Compression.Advanced) != 1 {
		t.Errorf("expected one advanced pass, got %v", cfg.Processing.Compression.Advanced)
	}
	if cfg.Catalog.Source != "file" || cfg.Catalog.Path != "pricing.yaml" {
		t.Errorf("unexpected catalog config: %+v", cfg.Catalog)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Telemetry.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("built config should be valid: %v", err)
	}
}

func TestConfigBuilder_Independent(t *testing.T) {
	a := NewTestConfig().WithListenAddress("127.0.0.1:1").Build()
	b := NewTestConfig().Build()

	if a.Server.ListenAddress == b.Server.ListenAddress {
		t.Error("builders should not share state")
	}
}
