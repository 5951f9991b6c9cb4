package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"blinkdeploys/tokenscope/pkg/config"
)

func TestNew(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	cfg := config.Default().Telemetry
	buf := &bytes.Buffer{}

	tel, err := New(&cfg, "test", buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer tel.Shutdown(context.Background())

	if !tel.Metrics().Enabled() {
		t.Error("expected metrics enabled by default")
	}
	if tel.Tracer().Enabled() {
		t.Error("expected tracing disabled by default")
	}

	slog.Info("hello")
	if buf.Len() == 0 {
		t.Error("expected slog default to write to the configured writer")
	}
}

func TestNew_InvalidLogging(t *testing.T) {
	cfg := config.Default().Telemetry
	cfg.Logging.Level = "verbose"

	if _, err := New(&cfg, "test", &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid logging level")
	}
}

func TestNoop(t *testing.T) {
	tel := Noop(&bytes.Buffer{})

	if tel.Metrics().Enabled() || tel.Tracer().Enabled() {
		t.Error("expected noop telemetry to disable metrics and tracing")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
