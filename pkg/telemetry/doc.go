// Package telemetry provides observability for tokenscope.
//
// # Components
//
//   - logging: Structured slog logging with secret redaction
//   - metrics: Prometheus metrics for analyses, HTTP requests, the token
//     cache and the pricing catalog
//   - tracing: OpenTelemetry tracing of analyses
//   - health: Liveness and readiness probes
//
// # Usage
//
//	tel, err := telemetry.New(&cfg.Telemetry, version, os.Stderr)
//	if err != nil {
//		return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	tel.Logger().Info("server starting", "addr", cfg.Server.ListenAddress)
//	tel.Metrics().SetCatalogModels(cat.Len())
//
//	ctx, span := tel.Tracer().Start(ctx, "analyze")
//	defer span.End()
//
// Metrics and tracing become no-ops when disabled in the configuration, so
// callers never branch on whether they are enabled.
package telemetry
