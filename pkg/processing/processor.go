package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing/compress"
	"blinkdeploys/tokenscope/pkg/processing/costs"
	"blinkdeploys/tokenscope/pkg/processing/tokens"
	"blinkdeploys/tokenscope/pkg/telemetry/logging"
	"blinkdeploys/tokenscope/pkg/telemetry/metrics"
	"blinkdeploys/tokenscope/pkg/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only text.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrNoModelFits is returned when the text exceeds every model's
	// context window.
	ErrNoModelFits = errors.New("no model fits the context window")

	// ErrTokenizer is returned when the token counter fails.
	ErrTokenizer = compress.ErrTokenizer
)

// Recorder receives one observation per finished analysis.
type Recorder interface {
	RecordAnalysis(status string, duration time.Duration, original, compressed int, reduction float64, techniques []string)
}

// Processor builds analysis reports. It holds no per-analysis state and is
// safe for concurrent use.
type Processor struct {
	compressor *compress.Compressor
	projector  *costs.Projector
	model      string

	recorder Recorder
	tracer   *tracing.Tracer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithRecorder records metrics for every analysis.
func WithRecorder(r Recorder) Option {
	return func(p *Processor) { p.recorder = r }
}

// WithTracer opens a span per analysis.
func WithTracer(t *tracing.Tracer) Option {
	return func(p *Processor) { p.tracer = t }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.logger = l.With("component", "processing") }
}

// WithClock replaces time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// WithModel sets the tokenizer model hint reported in logs and spans.
func WithModel(model string) Option {
	return func(p *Processor) { p.model = model }
}

// NewProcessor creates a Processor from its collaborators.
func NewProcessor(compressor *compress.Compressor, projector *costs.Projector, opts ...Option) *Processor {
	p := &Processor{
		compressor: compressor,
		projector:  projector,
		tracer:     tracing.Noop(),
		logger:     slog.Default().With("component", "processing"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig wires a Processor from the processing configuration, a
// token counter and a pricing catalog.
func NewFromConfig(cfg *config.ProcessingConfig, counter tokens.Counter, cat *catalog.Catalog, opts ...Option) (*Processor, error) {
	compressor, err := compress.NewFromConfig(cfg, counter)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	opts = append([]Option{WithModel(cfg.Tokens.Model)}, opts...)
	return NewProcessor(compressor, costs.NewProjector(cat), opts...), nil
}

// Projector returns the cost projector.
func (p *Processor) Projector() *costs.Projector {
	return p.projector
}

// Analyze builds a report for text. Costs are projected against the
// original token count. ctx is used for tracing and logging only.
func (p *Processor) Analyze(ctx context.Context, text string) (*Report, error) {
	start := time.Now()

	id := uuid.NewString()
	ctx = logging.WithAnalysisID(ctx, id)
	ctx = logging.WithModel(ctx, p.model)
	ctx, span := p.tracer.Start(ctx, "analyze")
	defer span.End()
	if traceID := tracing.TraceID(ctx); traceID != "" {
		ctx = logging.WithTraceID(ctx, traceID)
	}
	tracing.SetAnalysisAttributes(span, id, p.model, len(text))

	report, err := p.analyze(ctx, span, id, text)

	status := statusOf(err)
	var original, compressed int
	var reduction float64
	var techniques []string
	if report != nil {
		original = report.Compression.OriginalTokens
		compressed = report.Compression.CompressedTokens
		reduction = report.Compression.ReductionPercentage
		techniques = report.Compression.TechniquesApplied
	}
	if p.recorder != nil {
		p.recorder.RecordAnalysis(status, time.Since(start), original, compressed, reduction, techniques)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		tracing.SetErrorAttributes(span, err, status)
		logger.WarnContext(ctx, "analysis failed",
			"status", status,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	tracing.SetStatus(span, nil)
	logger.InfoContext(ctx, "analysis complete",
		"original_tokens", original,
		"compressed_tokens", compressed,
		"reduction_percentage", reduction,
		"cheapest_model", report.CheapestModel.Model,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (p *Processor) analyze(ctx context.Context, span trace.Span, id, text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	stats := ComputeTextStats(text)

	_, compressSpan := p.tracer.Start(ctx, "compress")
	result, err := p.compressor.Compress(text)
	if err != nil {
		tracing.SetErrorAttributes(compressSpan, err, metrics.StatusTokenizerError)
		compressSpan.End()
		return nil, err
	}
	tracing.SetCompressionAttributes(compressSpan, result.OriginalTokens, result.CompressedTokens,
		result.ReductionPercentage, result.TechniquesApplied)
	compressSpan.End()

	stats.OriginalTokens = result.OriginalTokens

	_, projectSpan := p.tracer.Start(ctx, "project_costs")
	analyses := p.projector.Project(result.OriginalTokens)
	cheapest, mostExpensive, ok := SelectModels(analyses)
	projectSpan.End()
	if !ok {
		return nil, fmt.Errorf("%w: %d tokens", ErrNoModelFits, result.OriginalTokens)
	}

	fitting := 0
	for _, a := range analyses {
		if a.FitsInContext {
			fitting++
		}
	}
	tracing.SetSelectionAttributes(span, len(analyses), fitting, cheapest.Model, mostExpensive.Model,
		cheapest.TotalCost1KOutput.String())

	return &Report{
		ID:                    id,
		Timestamp:             p.now().UTC(),
		TextStats:             stats,
		Compression:           result,
		CostAnalysis:          analyses,
		CheapestModel:         summarize(cheapest),
		MostExpensiveModel:    summarize(mostExpensive),
		CompressionStrategies: CompressionStrategies(),
	}, nil
}

// Compress runs only the compression pipeline.
func (p *Processor) Compress(ctx context.Context, text string) (*compress.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	_, span := p.tracer.Start(ctx, "compress")
	defer span.End()

	result, err := p.compressor.Compress(text)
	if err != nil {
		tracing.SetErrorAttributes(span, err, metrics.StatusTokenizerError)
		return nil, err
	}
	tracing.SetCompressionAttributes(span, result.OriginalTokens, result.CompressedTokens,
		result.ReductionPercentage, result.TechniquesApplied)
	return result, nil
}

// statusOf maps an analysis error to its metrics status label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, ErrEmptyInput):
		return metrics.StatusEmptyInput
	case errors.Is(err, ErrTokenizer):
		return metrics.StatusTokenizerError
	case errors.Is(err, ErrNoModelFits):
		return metrics.StatusNoModelFits
	default:
		return metrics.StatusError
	}
}
