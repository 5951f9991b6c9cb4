package metrics

import (
	"blinkdeploys/tokenscope/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics tracks cache effectiveness.
//
// Metrics:
//   - tokenscope_analyzer_cache_requests_total: Lookups by cache and result (hit, miss)
type CacheMetrics struct {
	requestsTotal *prometheus.CounterVec
}

// NewCacheMetrics creates and registers cache metrics with the provided registry.
func NewCacheMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_requests_total",
				Help:      "Total number of cache lookups by result",
			},
			[]string{"cache", "result"},
		),
	}

	registry.MustRegister(cm.requestsTotal)

	return cm
}

// RecordLookup records a cache lookup.
//
// Parameters:
//   - cacheName: Name of the cache (e.g., "tokenizer")
//   - hit: Whether the lookup found an entry
//
// Hit rate in PromQL:
//
//	rate(tokenscope_analyzer_cache_requests_total{cache="tokenizer",result="hit"}[5m]) /
//	rate(tokenscope_analyzer_cache_requests_total{cache="tokenizer"}[5m])
func (cm *CacheMetrics) RecordLookup(cacheName string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cm.requestsTotal.WithLabelValues(cacheName, result).Inc()
}
