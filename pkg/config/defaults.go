package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8000"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 60 * time.Second
	DefaultMaxUploadBytes  = int64(10 << 20) // 10MiB

	// Processing defaults
	DefaultTokensCounter       = "tiktoken"
	DefaultTokensModel         = "gpt-4"
	DefaultTokensCacheSize     = 10000
	DefaultTokensCharsPerToken = 4.0
	DefaultStopwordThreshold   = 5000
	DefaultDeduplicate         = false

	// Catalog defaults
	DefaultCatalogSource        = "builtin"
	DefaultCatalogMaxAge        = 180 * 24 * time.Hour
	DefaultCatalogAuditSchedule = "0 6 * * *"
	DefaultCatalogGitBranch     = "main"
	DefaultCatalogGitTimeout    = 30 * time.Second

	// Telemetry defaults
	DefaultLoggingLevel        = "info"
	DefaultLoggingFormat       = "json"
	DefaultLoggingRedact       = true
	DefaultMetricsEnabled      = true
	DefaultPrometheusPath      = "/metrics"
	DefaultMetricsNamespace    = "tokenscope"
	DefaultMetricsSubsystem    = "analyzer"
	DefaultTracingEnabled      = false
	DefaultTracingSampler      = "ratio"
	DefaultTracingSamplingRate = 0.1
	DefaultTracingExporter     = "otlp"
	DefaultTracingEndpoint     = "localhost:4317"
	DefaultTracingServiceName  = "tokenscope"
	DefaultOTLPInsecure        = true
	DefaultOTLPTimeout         = 10 * time.Second
	DefaultLivenessPath        = "/health"
	DefaultReadinessPath       = "/ready"
	DefaultHealthCheckTimeout  = 5 * time.Second
)

// Default returns a configuration with every field set to its default.
// Fields whose zero value is meaningful (true booleans, a zero cache size,
// an empty audit schedule) are only seeded here; ApplyDefaults cannot tell
// an explicit zero from an unset field.
func Default() *Config {
	cfg := &Config{}
	cfg.Processing.Tokens.CacheSize = DefaultTokensCacheSize
	cfg.Catalog.AuditSchedule = DefaultCatalogAuditSchedule
	cfg.Telemetry.Logging.Redact = DefaultLoggingRedact
	cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
	cfg.Telemetry.Tracing.OTLP.Insecure = DefaultOTLPInsecure
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}

	// Processing defaults
	applyProcessingDefaults(cfg)

	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = DefaultCatalogSource
	}
	if cfg.Catalog.MaxAge == 0 {
		cfg.Catalog.MaxAge = DefaultCatalogMaxAge
	}
	if cfg.Catalog.Git.Branch == "" {
		cfg.Catalog.Git.Branch = DefaultCatalogGitBranch
	}
	if cfg.Catalog.Git.Timeout == 0 {
		cfg.Catalog.Git.Timeout = DefaultCatalogGitTimeout
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultPrometheusPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.DurationBuckets) == 0 {
		cfg.Telemetry.Metrics.DurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	}
	if len(cfg.Telemetry.Metrics.TokenCountBuckets) == 0 {
		cfg.Telemetry.Metrics.TokenCountBuckets = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000}
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSamplingRate
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Telemetry.Tracing.OTLP.Timeout == 0 {
		cfg.Telemetry.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}
	if cfg.Telemetry.Health.LivenessPath == "" {
		cfg.Telemetry.Health.LivenessPath = DefaultLivenessPath
	}
	if cfg.Telemetry.Health.ReadinessPath == "" {
		cfg.Telemetry.Health.ReadinessPath = DefaultReadinessPath
	}
	if cfg.Telemetry.Health.CheckTimeout == 0 {
		cfg.Telemetry.Health.CheckTimeout = DefaultHealthCheckTimeout
	}
}

// applyProcessingDefaults applies default values to processing configuration.
func applyProcessingDefaults(cfg *Config) {
	// Tokens defaults
	if cfg.Processing.Tokens.Counter == "" {
		cfg.Processing.Tokens.Counter = DefaultTokensCounter
	}
	if cfg.Processing.Tokens.Model == "" {
		cfg.Processing.Tokens.Model = DefaultTokensModel
	}
	if cfg.Processing.Tokens.Models == nil {
		cfg.Processing.Tokens.Models = map[string]float64{
			"gpt-4":   4.0,
			"gpt-3.5": 4.0,
			"gpt-5":   4.0,
			"claude":  3.5,
			"gemini":  4.0,
			"llama":   3.8,
			"default": DefaultTokensCharsPerToken,
		}
	}

	// Compression defaults
	if cfg.Processing.Compression.StopwordThreshold == 0 {
		cfg.Processing.Compression.StopwordThreshold = DefaultStopwordThreshold
	}
}
