package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/telemetry/health"
	"blinkdeploys/tokenscope/pkg/telemetry/logging"
	"blinkdeploys/tokenscope/pkg/telemetry/metrics"
	"blinkdeploys/tokenscope/pkg/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Telemetry bundles the logger, metrics collector, tracer and health
// checker built from one telemetry configuration.
type Telemetry struct {
	logger  *logging.Logger
	metrics *metrics.Collector
	tracer  *tracing.Tracer
	health  *health.Checker
}

// New builds every telemetry component. Logs are written to logOut
// (os.Stderr when nil) and the logger is installed as the slog default.
func New(cfg *config.TelemetryConfig, version string, logOut io.Writer) (*Telemetry, error) {
	logger, err := logging.New(logging.FromConfig(&cfg.Logging, logOut))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger.SetDefault()

	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	tracer, err := tracing.New(&cfg.Tracing, version)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	return &Telemetry{
		logger:  logger,
		metrics: metrics.NewCollector(&cfg.Metrics, registry),
		tracer:  tracer,
		health:  health.New(cfg.Health.CheckTimeout),
	}, nil
}

// Noop returns telemetry with metrics and tracing disabled, logging to w.
func Noop(w io.Writer) *Telemetry {
	logger, _ := logging.New(logging.Config{Level: "error", Writer: w})
	return &Telemetry{
		logger:  logger,
		metrics: metrics.NewCollector(&config.MetricsConfig{}, nil),
		tracer:  tracing.Noop(),
		health:  health.New(0),
	}
}

// Logger returns the structured logger.
func (t *Telemetry) Logger() *logging.Logger { return t.logger }

// Metrics returns the Prometheus collector.
func (t *Telemetry) Metrics() *metrics.Collector { return t.metrics }

// Tracer returns the tracer.
func (t *Telemetry) Tracer() *tracing.Tracer { return t.tracer }

// Health returns the health checker.
func (t *Telemetry) Health() *health.Checker { return t.health }

// Shutdown flushes pending spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if err := t.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("tracer: %w", err))
	}
	return errors.Join(errs...)
}
