package metrics

import (
	"strconv"
	"time"

	"blinkdeploys/tokenscope/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks HTTP requests served by the API.
//
// Metrics:
//   - tokenscope_analyzer_http_requests_total: Requests by route, method and status code
//   - tokenscope_analyzer_http_request_duration_seconds: Request duration histogram
//   - tokenscope_analyzer_http_request_size_bytes: Request body size histogram
type RequestMetrics struct {
	requestsTotal *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec

	sizeBytes *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"route", "method", "code"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"route", "method"},
		),

		sizeBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "http_request_size_bytes",
				Help:      "Size of HTTP request bodies in bytes",
				Buckets:   prometheus.ExponentialBuckets(1024, 2, 14), // 1KB to 8MB
			},
			[]string{"route"},
		),
	}

	registry.MustRegister(
		rm.requestsTotal,
		rm.requestDuration,
		rm.sizeBytes,
	)

	return rm
}

// RecordRequest records a served request.
//
// Parameters:
//   - route: Route pattern (e.g., "/analyze"), not the raw path
//   - method: HTTP method
//   - code: Response status code
//   - duration: Time to serve the request
//   - sizeBytes: Request body size; ignored when not positive
func (rm *RequestMetrics) RecordRequest(route, method string, code int, duration time.Duration, sizeBytes int64) {
	rm.requestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	rm.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())

	if sizeBytes > 0 {
		rm.sizeBytes.WithLabelValues(route).Observe(float64(sizeBytes))
	}
}
