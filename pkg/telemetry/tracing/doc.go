// Package tracing provides OpenTelemetry tracing for tokenscope analyses.
//
// Each analysis produces a root "analyze" span with child spans for the
// compression pipeline and the cost projection. Span attributes carry the
// token counts, the reduction percentage, the techniques that ran and the
// selected models, so a slow or surprising report can be found in a trace
// backend by its analysis ID.
//
// # Sampling Strategies
//
// Three sampling strategies are supported:
//   - always: Sample all traces (development/debugging)
//   - never: Sample no traces
//   - ratio: Sample a fraction of traces (production)
//
// Samplers are parent-based: when the HTTP server receives a sampled
// traceparent header the analysis spans are kept.
//
// # Export
//
// Spans are exported over OTLP/gRPC in batches. When tracing is disabled
// the package installs nothing globally and returns a noop tracer.
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "analyze")
//	defer span.End()
package tracing
