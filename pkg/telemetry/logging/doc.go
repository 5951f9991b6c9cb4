// Package logging configures structured logging for tokenscope.
//
// The Logger wraps log/slog with JSON or text output, a runtime-adjustable
// level and optional secret redaction. Commands build one Logger at
// startup and install it with SetDefault; library packages then log
// through slog.Default with a "component" attribute.
//
//	logger, err := logging.New(logging.FromConfig(&cfg.Telemetry.Logging, os.Stderr))
//	if err != nil {
//		return err
//	}
//	logger.SetDefault()
//
// Context fields (request_id, analysis_id, model, trace_id) are carried in
// the context and attached with FromContext:
//
//	ctx = logging.WithAnalysisID(ctx, report.ID)
//	logging.FromContext(ctx, slog.Default()).Info("analysis complete")
//
// # Redaction
//
// With redaction enabled, string attributes are scanned for bearer tokens,
// API keys, password assignments and email addresses. Values of sensitive
// keys (token, secret, authorization, ...) are replaced with "***".
package logging
