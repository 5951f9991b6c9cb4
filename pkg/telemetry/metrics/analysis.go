package metrics

import (
	"time"

	"blinkdeploys/tokenscope/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics tracks report generation.
//
// Metrics:
//   - tokenscope_analyzer_analyses_total: Analyses by status
//   - tokenscope_analyzer_analysis_duration_seconds: Analysis duration histogram
//   - tokenscope_analyzer_tokens: Token counts by stage (original, compressed)
//   - tokenscope_analyzer_reduction_percent: Compression reduction histogram
type AnalysisMetrics struct {
	analysesTotal *prometheus.CounterVec

	duration prometheus.Histogram

	tokens *prometheus.HistogramVec

	reduction prometheus.Histogram
}

// NewAnalysisMetrics creates and registers analysis metrics with the provided registry.
func NewAnalysisMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *AnalysisMetrics {
	am := &AnalysisMetrics{
		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "analyses_total",
				Help:      "Total number of text analyses by status",
			},
			[]string{"status"},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of text analyses in seconds",
				Buckets:   cfg.DurationBuckets,
			},
		),

		tokens: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "tokens",
				Help:      "Token counts of analyzed text by stage",
				Buckets:   cfg.TokenCountBuckets,
			},
			[]string{"stage"},
		),

		reduction: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "reduction_percent",
				Help:      "Token reduction achieved by compression, in percent",
				Buckets:   []float64{-10, 0, 1, 2.5, 5, 10, 20, 35, 50},
			},
		),
	}

	registry.MustRegister(
		am.analysesTotal,
		am.duration,
		am.tokens,
		am.reduction,
	)

	return am
}

// RecordAnalysis records one analysis.
//
// Parameters:
//   - status: "success", "empty_input", "tokenizer_error", "no_model_fits" or "error"
//   - duration: Wall time of the analysis
//   - original, compressed: Token counts; ignored unless status is "success"
//   - reduction: Reduction percentage; ignored unless status is "success"
func (am *AnalysisMetrics) RecordAnalysis(status string, duration time.Duration, original, compressed int, reduction float64) {
	am.analysesTotal.WithLabelValues(status).Inc()
	am.duration.Observe(duration.Seconds())

	if status != StatusSuccess {
		return
	}
	am.tokens.WithLabelValues("original").Observe(float64(original))
	am.tokens.WithLabelValues("compressed").Observe(float64(compressed))
	am.reduction.Observe(reduction)
}
