package metrics

import (
	"sync"
	"time"

	"blinkdeploys/tokenscope/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Analysis statuses recorded by RecordAnalysis.
const (
	StatusSuccess        = "success"
	StatusEmptyInput     = "empty_input"
	StatusTokenizerError = "tokenizer_error"
	StatusNoModelFits    = "no_model_fits"
	StatusError          = "error"
)

// tokenizerCache is the cache label used by ObserveCacheLookup.
const tokenizerCache = "tokenizer"

// Collector is the main orchestrator for all Prometheus metrics in tokenscope.
// It manages metric registration and provides a unified interface for
// recording metrics across all components.
//
// When metrics are disabled every Record/Set method is a no-op, so callers
// never need to check.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Analysis metrics
	analysisMetrics *AnalysisMetrics

	// Compression technique counter
	techniquesTotal *prometheus.CounterVec

	// HTTP request metrics
	requestMetrics *RequestMetrics

	// Pricing catalog gauges
	catalogMetrics *CatalogMetrics

	// Tokenizer cache metrics
	cacheMetrics *CacheMetrics

	// Cardinality tracking
	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a new registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "tokenscope",
//		Subsystem: "analyzer",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		// Analyses are CPU-bound and short (5ms - 5s)
		cfg.DurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	}
	if len(cfg.TokenCountBuckets) == 0 {
		cfg.TokenCountBuckets = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000}
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		cardinalityLimiter: NewCardinalityLimiter(100),
	}

	c.analysisMetrics = NewAnalysisMetrics(cfg, registry)
	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.catalogMetrics = NewCatalogMetrics(cfg, registry)
	c.cacheMetrics = NewCacheMetrics(cfg, registry)

	c.techniquesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "techniques_applied_total",
			Help:      "Total number of times each compression technique ran",
		},
		[]string{"technique"},
	)
	registry.MustRegister(c.techniquesTotal)

	return c
}

// Enabled reports whether metrics are being recorded.
func (c *Collector) Enabled() bool {
	return c.config.Enabled
}

// RecordAnalysis records a finished analysis and the techniques it applied.
//
// Example:
//
//	collector.RecordAnalysis(
//		metrics.StatusSuccess,
//		12*time.Millisecond,
//		1500, // original tokens
//		1320, // compressed tokens
//		12.0, // reduction percent
//		[]string{"Whitespace normalization", "Punctuation optimization"},
//	)
func (c *Collector) RecordAnalysis(status string, duration time.Duration, original, compressed int, reduction float64, techniques []string) {
	if !c.config.Enabled {
		return
	}

	c.analysisMetrics.RecordAnalysis(status, duration, original, compressed, reduction)
	for _, t := range techniques {
		// caps the label space
		if !c.cardinalityLimiter.Allow("technique:" + t) {
			t = "other"
		}
		c.techniquesTotal.WithLabelValues(t).Inc()
	}
}

// RecordHTTPRequest records a served HTTP request.
func (c *Collector) RecordHTTPRequest(route, method string, code int, duration time.Duration, sizeBytes int64) {
	if !c.config.Enabled {
		return
	}

	c.requestMetrics.RecordRequest(route, method, code, duration, sizeBytes)
}

// SetCatalogModels sets the number of models in the pricing catalog.
func (c *Collector) SetCatalogModels(n int) {
	if !c.config.Enabled {
		return
	}

	c.catalogMetrics.SetModels(n)
}

// SetCatalogAge sets the pricing catalog age in days.
func (c *Collector) SetCatalogAge(days float64) {
	if !c.config.Enabled {
		return
	}

	c.catalogMetrics.SetAgeDays(days)
}

// ObserveCacheLookup records a tokenizer cache lookup.
func (c *Collector) ObserveCacheLookup(hit bool) {
	if !c.config.Enabled {
		return
	}

	c.cacheMetrics.RecordLookup(tokenizerCache, hit)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if the limit has not been reached yet.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	// Double-check after acquiring write lock
	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
