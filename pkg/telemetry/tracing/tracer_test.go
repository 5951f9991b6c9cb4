package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"blinkdeploys/tokenscope/pkg/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// TestNew tests the creation of a new tracer
func TestNew(t *testing.T) {
	otlp := config.OTLPConfig{Insecure: true, Timeout: 10 * time.Second}

	tests := []struct {
		name    string
		config  *config.TracingConfig
		enabled bool
		wantErr bool
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name: "disabled tracing",
			config: &config.TracingConfig{
				Enabled:     false,
				ServiceName: "tokenscope",
			},
		},
		{
			name: "enabled with always sampler",
			config: &config.TracingConfig{
				Enabled:     true,
				Sampler:     SamplerAlways,
				Exporter:    "otlp",
				Endpoint:    "localhost:4317",
				ServiceName: "tokenscope",
				OTLP:        otlp,
			},
			enabled: true,
		},
		{
			name: "enabled with ratio sampler",
			config: &config.TracingConfig{
				Enabled:     true,
				Sampler:     SamplerRatio,
				SampleRatio: 0.25,
				Exporter:    "otlp",
				Endpoint:    "localhost:4317",
				ServiceName: "tokenscope",
				OTLP:        otlp,
			},
			enabled: true,
		},
		{
			name: "invalid ratio",
			config: &config.TracingConfig{
				Enabled:     true,
				Sampler:     SamplerRatio,
				SampleRatio: 1.5,
				Exporter:    "otlp",
				ServiceName: "tokenscope",
			},
			wantErr: true,
		},
		{
			name: "unknown sampler",
			config: &config.TracingConfig{
				Enabled:     true,
				Sampler:     "sometimes",
				Exporter:    "otlp",
				ServiceName: "tokenscope",
			},
			wantErr: true,
		},
		{
			name: "unsupported exporter",
			config: &config.TracingConfig{
				Enabled:     true,
				Sampler:     SamplerAlways,
				Exporter:    "zipkin",
				ServiceName: "tokenscope",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, err := New(tt.config, "test")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer tracer.Shutdown(context.Background())

			if tracer.Enabled() != tt.enabled {
				t.Errorf("Enabled() = %v, want %v", tracer.Enabled(), tt.enabled)
			}
		})
	}
}

// TestNoop tests that the noop tracer produces non-recording spans
func TestNoop(t *testing.T) {
	tracer := Noop()

	ctx, span := tracer.Start(context.Background(), "analyze")
	defer span.End()

	if span.IsRecording() {
		t.Error("Expected noop span not to record")
	}
	if id := TraceID(ctx); id != "" {
		t.Errorf("TraceID() = %q, want empty", id)
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// newRecordingTracer returns a Tracer backed by an in-memory span recorder.
func newRecordingTracer() (*Tracer, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return &Tracer{
		config:   &config.TracingConfig{Enabled: true},
		tracer:   provider.Tracer(instrumentationName),
		provider: provider,
		enabled:  true,
	}, recorder
}

// TestAttributes tests that the helpers set the expected span attributes
func TestAttributes(t *testing.T) {
	tracer, recorder := newRecordingTracer()

	ctx, span := tracer.Start(context.Background(), "analyze")
	if TraceID(ctx) == "" {
		t.Error("Expected trace ID for recording span")
	}

	SetAnalysisAttributes(span, "abc-123", "gpt-4", 42)
	SetCompressionAttributes(span, 100, 80, 20, []string{"Whitespace normalization"})
	SetSelectionAttributes(span, 30, 28, "Tiny", "Huge", "0.000120")
	AddEvent(span, "stopwords.skipped", attribute.Int("threshold", 1000))
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(ended))
	}

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	tests := []struct {
		key  string
		want string
	}{
		{AttrAnalysisID, "abc-123"},
		{AttrModelHint, "gpt-4"},
		{AttrInputBytes, "42"},
		{AttrTokensOriginal, "100"},
		{AttrTokensCompressed, "80"},
		{AttrModelsFitting, "28"},
		{AttrCheapestModel, "Tiny"},
		{AttrMostExpensive, "Huge"},
	}
	for _, tt := range tests {
		got, ok := attrs[attribute.Key(tt.key)]
		if !ok {
			t.Errorf("Missing attribute %s", tt.key)
			continue
		}
		if got.Emit() != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got.Emit(), tt.want)
		}
	}

	if events := ended[0].Events(); len(events) != 1 || events[0].Name != "stopwords.skipped" {
		t.Errorf("Expected stopwords.skipped event, got %v", events)
	}
}

// TestSetErrorAttributes tests error recording on spans
func TestSetErrorAttributes(t *testing.T) {
	tracer, recorder := newRecordingTracer()

	_, span := tracer.Start(context.Background(), "analyze")
	SetErrorAttributes(span, errors.New("tokenizer failed"), "tokenizer_error")
	span.End()

	_, ok := tracer.Start(context.Background(), "analyze")
	SetErrorAttributes(ok, nil, "unused")
	ok.End()

	ended := recorder.Ended()
	if len(ended) != 2 {
		t.Fatalf("Expected 2 ended spans, got %d", len(ended))
	}

	failed := ended[0]
	if failed.Status().Code != codes.Error {
		t.Errorf("Status = %v, want Error", failed.Status().Code)
	}
	if len(failed.Events()) == 0 {
		t.Error("Expected recorded error event")
	}

	if ended[1].Status().Code != codes.Unset {
		t.Errorf("nil error should leave status unset, got %v", ended[1].Status().Code)
	}
}

// TestCreateSampler tests sampler selection
func TestCreateSampler(t *testing.T) {
	tests := []struct {
		strategy string
		ratio    float64
		wantErr  bool
	}{
		{SamplerAlways, 0, false},
		{SamplerNever, 0, false},
		{SamplerRatio, 0, false},
		{SamplerRatio, 1, false},
		{SamplerRatio, -0.1, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		_, err := createSampler(tt.strategy, tt.ratio)
		if (err != nil) != tt.wantErr {
			t.Errorf("createSampler(%q, %v) error = %v, wantErr %v", tt.strategy, tt.ratio, err, tt.wantErr)
		}
	}
}
