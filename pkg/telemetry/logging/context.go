package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for HTTP request IDs.
	RequestIDKey contextKey = "request_id"

	// AnalysisIDKey is the context key for analysis report IDs.
	AnalysisIDKey contextKey = "analysis_id"

	// ModelKey is the context key for the tokenizer model name.
	ModelKey contextKey = "model"

	// TraceIDKey is the context key for trace IDs.
	TraceIDKey contextKey = "trace_id"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

// WithAnalysisID adds an analysis ID to the context.
func WithAnalysisID(ctx context.Context, analysisID string) context.Context {
	return context.WithValue(ctx, AnalysisIDKey, analysisID)
}

// GetAnalysisID retrieves the analysis ID from the context.
func GetAnalysisID(ctx context.Context) string {
	return stringValue(ctx, AnalysisIDKey)
}

// WithModel adds a model name to the context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

// GetModel retrieves the model name from the context.
func GetModel(ctx context.Context) string {
	return stringValue(ctx, ModelKey)
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	return stringValue(ctx, TraceIDKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}

// contextFields lists the context values attached to log lines, in order.
var contextFields = []struct {
	key string
	get func(context.Context) string
}{
	{string(RequestIDKey), GetRequestID},
	{string(AnalysisIDKey), GetAnalysisID},
	{string(ModelKey), GetModel},
	{string(TraceIDKey), GetTraceID},
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	for _, f := range contextFields {
		if v := f.get(ctx); v != "" {
			fields = append(fields, f.key, v)
		}
	}

	return fields
}
