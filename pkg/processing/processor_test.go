package processing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing/compress"
	"blinkdeploys/tokenscope/pkg/processing/costs"
	"blinkdeploys/tokenscope/pkg/processing/tokens"
	"blinkdeploys/tokenscope/pkg/telemetry/metrics"
	"blinkdeploys/tokenscope/pkg/telemetry/tracing"
)

var wordCounter = tokens.CounterFunc(func(text, _ string) (int, error) {
	return len(strings.Fields(text)), nil
})

func entry(provider, model, in, out string, ctx int) catalog.PricingEntry {
	return catalog.PricingEntry{
		Provider:         provider,
		Model:            model,
		InputPerMillion:  decimal.RequireFromString(in),
		OutputPerMillion: decimal.RequireFromString(out),
		ContextWindow:    ctx,
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		entry("Acme", "Small", "1.00", "2.00", 10),
		entry("Acme", "Mid", "0.50", "1.00", 1000),
		entry("Bolt", "Big", "10.00", "30.00", 100000),
		entry("Bolt", "Twin", "0.50", "1.00", 1000),
	)
	require.NoError(t, err)
	return c
}

type fakeRecorder struct {
	mu       sync.Mutex
	statuses []string
}

func (r *fakeRecorder) RecordAnalysis(status string, _ time.Duration, _, _ int, _ float64, _ []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func newProcessor(t *testing.T, counter tokens.Counter, opts ...Option) *Processor {
	t.Helper()
	c, err := compress.New(compress.Options{Counter: counter, StopwordThreshold: 5000})
	require.NoError(t, err)
	return NewProcessor(c, costs.NewProjector(testCatalog(t)), opts...)
}

func TestAnalyze(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	rec := &fakeRecorder{}
	p := newProcessor(t, wordCounter, WithRecorder(rec), WithClock(func() time.Time { return fixed }))

	text := "The  quick brown fox\njumps over the lazy dog !!\nagain and"
	report, err := p.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, fixed.UTC(), report.Timestamp)

	assert.Equal(t, TextStats{
		Characters:         len(text),
		Words:              12,
		Lines:              3,
		OriginalTokens:     12,
		ReadingTimeMinutes: 0.1,
	}, report.TextStats)

	assert.Equal(t, 12, report.Compression.OriginalTokens)
	assert.Contains(t, report.Compression.TechniquesApplied, compress.TechniqueWhitespace)

	require.Len(t, report.CostAnalysis, 4)
	assert.False(t, report.CostAnalysis[0].FitsInContext, "Small has a 10 token window")

	// Mid and Twin tie; the first seen wins
	assert.Equal(t, "Mid", report.CheapestModel.Model)
	assert.Equal(t, "Big", report.MostExpensiveModel.Model)
	assert.Equal(t, CompressionStrategies(), report.CompressionStrategies)

	assert.Equal(t, []string{metrics.StatusSuccess}, rec.statuses)
}

func TestAnalyze_CostsUseOriginalTokens(t *testing.T) {
	p := newProcessor(t, wordCounter)

	report, err := p.Analyze(context.Background(), "a   b\n\n\nc")
	require.NoError(t, err)

	want := p.Projector().Project(report.Compression.OriginalTokens)
	require.Len(t, report.CostAnalysis, len(want))
	for i := range want {
		assert.True(t, want[i].InputCost.Equal(report.CostAnalysis[i].InputCost))
	}
}

func TestAnalyze_Errors(t *testing.T) {
	failing := tokens.CounterFunc(func(string, string) (int, error) {
		return 0, errors.New("encoder offline")
	})
	huge := tokens.CounterFunc(func(string, string) (int, error) {
		return 200000, nil
	})

	tests := []struct {
		name       string
		counter    tokens.Counter
		text       string
		wantErr    error
		wantStatus string
	}{
		{"empty", wordCounter, "", ErrEmptyInput, metrics.StatusEmptyInput},
		{"whitespace only", wordCounter, " \n\t ", ErrEmptyInput, metrics.StatusEmptyInput},
		{"tokenizer failure", failing, "hello", ErrTokenizer, metrics.StatusTokenizerError},
		{"nothing fits", huge, "hello", ErrNoModelFits, metrics.StatusNoModelFits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			p := newProcessor(t, tt.counter, WithRecorder(rec))

			report, err := p.Analyze(context.Background(), tt.text)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.wantStatus}, rec.statuses)
		})
	}
}

func TestAnalyze_EmptyInputSkipsCounter(t *testing.T) {
	called := false
	counter := tokens.CounterFunc(func(string, string) (int, error) {
		called = true
		return 1, nil
	})

	_, err := newProcessor(t, counter).Analyze(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.False(t, called)
}

func TestAnalyze_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	p := newProcessor(t, wordCounter, WithTracer(tracing.FromProvider(provider)), WithModel("gpt-4"))

	_, err := p.Analyze(context.Background(), "one two three")
	require.NoError(t, err)

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"analyze", "compress", "project_costs"}, names)
}

func TestAnalyze_LogsTraceID(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	p := newProcessor(t, wordCounter, WithTracer(tracing.FromProvider(provider)), WithLogger(logger), WithModel("gpt-4"))

	report, err := p.Analyze(context.Background(), "one two three")
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "analysis complete", line["msg"])
	assert.Equal(t, report.ID, line["analysis_id"])
	assert.Equal(t, "gpt-4", line["model"])

	var traceID string
	for _, s := range recorder.Ended() {
		if s.Name() == "analyze" {
			traceID = s.SpanContext().TraceID().String()
		}
	}
	require.NotEmpty(t, traceID)
	assert.Equal(t, traceID, line["trace_id"])
}

func TestAnalyze_NoTraceIDWithoutTracing(t *testing.T) {
	buf := &bytes.Buffer{}
	p := newProcessor(t, wordCounter, WithLogger(slog.New(slog.NewJSONHandler(buf, nil))))

	_, err := p.Analyze(context.Background(), "one two three")
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestCompress(t *testing.T) {
	p := newProcessor(t, wordCounter)

	res, err := p.Compress(context.Background(), "a  b")
	require.NoError(t, err)
	assert.Equal(t, "a b", res.CompressedText)

	_, err = p.Compress(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Processing.Compression.Advanced = []string{"nope"}

	_, err := NewFromConfig(&cfg.Processing, wordCounter, catalog.Default())
	assert.ErrorIs(t, err, compress.ErrUnknownTechnique)

	cfg.Processing.Compression.Advanced = nil
	p, err := NewFromConfig(&cfg.Processing, wordCounter, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, cfg.Processing.Tokens.Model, p.model)
}

func TestAnalyze_Concurrent(t *testing.T) {
	p := newProcessor(t, wordCounter)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Analyze(context.Background(), "repeat this text please")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
