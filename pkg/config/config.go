package config

import "time"

// Config is the root configuration structure for tokenscope.
// It contains the HTTP server, the analysis pipeline, the pricing catalog
// and telemetry settings.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and upload limits.
	Server ServerConfig `yaml:"server"`

	// Processing contains configuration for the analysis pipeline including
	// token counting and text compression.
	Processing ProcessingConfig `yaml:"processing"`

	// Catalog selects where model pricing is loaded from and how its age
	// is audited.
	Catalog CatalogConfig `yaml:"catalog"`

	// Telemetry contains configuration for observability including logging,
	// metrics, and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8000", "0.0.0.0:8000").
	// Default: "127.0.0.1:8000"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 60s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// RequestTimeout bounds the handling of a single request.
	// Default: 60s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxUploadBytes is the largest accepted request body.
	// Default: 10485760 (10MiB)
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// ProcessingConfig contains configuration for the analysis pipeline.
type ProcessingConfig struct {
	// Tokens contains token counting configuration.
	Tokens TokensConfig `yaml:"tokens"`

	// Compression contains compression pipeline configuration.
	Compression CompressionConfig `yaml:"compression"`
}

// TokensConfig contains token counting configuration.
type TokensConfig struct {
	// Counter is the token counter type.
	// Options: "tiktoken", "simple"
	// Default: "tiktoken"
	Counter string `yaml:"counter"`

	// Model is the model hint used to pick a tokenizer encoding.
	// Default: "gpt-4"
	Model string `yaml:"model"`

	// CacheSize is the maximum number of cached token counts.
	// 0 disables the cache.
	// Default: 10000
	CacheSize int `yaml:"cache_size"`

	// Models contains model-specific characters-per-token ratios used by
	// the simple counter. Keys match by exact name, then by prefix.
	Models map[string]float64 `yaml:"models"`
}

// CompressionConfig contains compression pipeline configuration.
type CompressionConfig struct {
	// StopwordThreshold is the original token count above which stopword
	// reduction runs.
	// Default: 5000
	StopwordThreshold int `yaml:"stopword_threshold"`

	// Deduplicate enables removal of repeated lines.
	// Default: false
	Deduplicate bool `yaml:"deduplicate"`

	// Advanced lists the optional phrase-table passes to run, by technique
	// name (e.g. "Filler phrase removal"). They always run in pipeline
	// order regardless of the order listed here.
	// Default: []
	Advanced []string `yaml:"advanced"`
}

// CatalogConfig selects the pricing catalog source.
type CatalogConfig struct {
	// Source is where prices come from.
	// Options: "builtin", "file", "sqlite", "git"
	// Default: "builtin"
	Source string `yaml:"source"`

	// Path is the catalog document (.yaml, .yml, .toml, .json) for the
	// file source, the database file for the sqlite source, or the
	// document's path inside the repository for the git source.
	Path string `yaml:"path"`

	// Git configures the git source.
	Git GitCatalogConfig `yaml:"git"`

	// MaxAge is the catalog age after which the audit warns.
	// Default: 4320h (180 days)
	MaxAge time.Duration `yaml:"max_age"`

	// AuditSchedule is the cron expression for the staleness audit.
	// Empty disables the scheduled audit.
	// Default: "0 6 * * *"
	AuditSchedule string `yaml:"audit_schedule"`
}

// GitCatalogConfig configures loading the catalog from a Git repository.
type GitCatalogConfig struct {
	// Repository URL (HTTPS).
	// Example: "https://github.com/company/llm-prices.git"
	Repository string `yaml:"repository"`

	// Branch to read.
	// Default: "main"
	Branch string `yaml:"branch"`

	// Token for HTTPS authentication. Prefer TOKENSCOPE_CATALOG_GIT_TOKEN.
	Token string `yaml:"token"`

	// Timeout bounds the clone.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`

	// Health contains health check configuration.
	Health HealthConfig `yaml:"health"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// Redact masks secrets (API keys, bearer tokens, emails) in logged
	// string values.
	// Default: true
	Redact bool `yaml:"redact"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "tokenscope"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "analyzer"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets defines histogram buckets for analysis duration (seconds).
	// Default: [0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5]
	DurationBuckets []float64 `yaml:"duration_buckets"`

	// TokenCountBuckets defines histogram buckets for token counts.
	// Default: [100, 500, 1000, 5000, 10000, 50000, 100000, 500000]
	TokenCountBuckets []float64 `yaml:"token_count_buckets"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter determines the trace exporter to use.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the trace collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "tokenscope"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Insecure disables TLS for OTLP connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

// HealthConfig contains health check endpoint configuration.
type HealthConfig struct {
	// LivenessPath is the path for the liveness probe endpoint.
	// Default: "/health"
	LivenessPath string `yaml:"liveness_path"`

	// ReadinessPath is the path for the readiness probe endpoint.
	// Default: "/ready"
	ReadinessPath string `yaml:"readiness_path"`

	// CheckTimeout is the timeout for individual component health checks.
	// Default: 5s
	CheckTimeout time.Duration `yaml:"check_timeout"`
}
