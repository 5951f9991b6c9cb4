package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateProcessing(&cfg.Processing)...)
	errs = append(errs, validateCatalog(&cfg.Catalog)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	} else if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid listen address %q: must be host:port", cfg.ListenAddress),
		})
	}

	durations := []struct {
		field string
		value time.Duration
	}{
		{"server.read_timeout", cfg.ReadTimeout},
		{"server.write_timeout", cfg.WriteTimeout},
		{"server.idle_timeout", cfg.IdleTimeout},
		{"server.shutdown_timeout", cfg.ShutdownTimeout},
		{"server.request_timeout", cfg.RequestTimeout},
	}
	for _, d := range durations {
		if d.value < 0 {
			errs = append(errs, FieldError{
				Field:   d.field,
				Message: "timeout must not be negative",
			})
		}
	}

	if cfg.MaxUploadBytes <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_upload_bytes",
			Message: "max upload bytes must be positive",
		})
	}

	return errs
}

// validateProcessing validates token counting and compression settings.
// Technique names in compression.advanced are checked when the pipeline
// is built.
func validateProcessing(cfg *ProcessingConfig) []FieldError {
	var errs []FieldError

	validCounters := map[string]bool{"tiktoken": true, "simple": true}
	if !validCounters[cfg.Tokens.Counter] {
		errs = append(errs, FieldError{
			Field:   "processing.tokens.counter",
			Message: fmt.Sprintf("invalid counter %q: must be 'tiktoken' or 'simple'", cfg.Tokens.Counter),
		})
	}
	if cfg.Tokens.CacheSize < 0 {
		errs = append(errs, FieldError{
			Field:   "processing.tokens.cache_size",
			Message: "cache size must be non-negative",
		})
	}
	for model, ratio := range cfg.Tokens.Models {
		if ratio <= 0 {
			errs = append(errs, FieldError{
				Field:   "processing.tokens.models." + model,
				Message: "chars-per-token ratio must be positive",
			})
		}
	}

	if cfg.Compression.StopwordThreshold < 0 {
		errs = append(errs, FieldError{
			Field:   "processing.compression.stopword_threshold",
			Message: "stopword threshold must be non-negative",
		})
	}
	seen := make(map[string]bool)
	for _, name := range cfg.Compression.Advanced {
		if seen[name] {
			errs = append(errs, FieldError{
				Field:   "processing.compression.advanced",
				Message: fmt.Sprintf("technique %q listed more than once", name),
			})
		}
		seen[name] = true
	}

	return errs
}

// validateCatalog validates catalog source configuration.
func validateCatalog(cfg *CatalogConfig) []FieldError {
	var errs []FieldError

	switch cfg.Source {
	case "builtin":
	case "file", "sqlite":
		if cfg.Path == "" {
			errs = append(errs, FieldError{
				Field:   "catalog.path",
				Message: fmt.Sprintf("path is required for the %s source", cfg.Source),
			})
		}
	case "git":
		if cfg.Git.Repository == "" {
			errs = append(errs, FieldError{
				Field:   "catalog.git.repository",
				Message: "repository is required for the git source",
			})
		}
		if cfg.Path == "" {
			errs = append(errs, FieldError{
				Field:   "catalog.path",
				Message: "path is required for the git source",
			})
		}
		if cfg.Git.Timeout < 0 {
			errs = append(errs, FieldError{
				Field:   "catalog.git.timeout",
				Message: "timeout must not be negative",
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "catalog.source",
			Message: fmt.Sprintf("invalid source %q: must be 'builtin', 'file', 'sqlite', or 'git'", cfg.Source),
		})
	}

	if cfg.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "catalog.max_age",
			Message: "max age must not be negative",
		})
	}

	if cfg.AuditSchedule != "" {
		if _, err := cron.ParseStandard(cfg.AuditSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "catalog.audit_schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Logging.Level == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	// Validate logging format
	validFormats := map[string]bool{"json": true, "text": true}
	if cfg.Logging.Format == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	// Validate metrics path
	if cfg.Metrics.Enabled {
		if cfg.Metrics.Path == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path is required when metrics are enabled",
			})
		} else if cfg.Metrics.Path[0] != '/' {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path must start with /",
			})
		}
	}

	// Validate tracing configuration
	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.endpoint",
			Message: "tracing endpoint is required when tracing is enabled",
		})
	}
	validSamplers := map[string]bool{"always": true, "never": true, "ratio": true}
	if !validSamplers[cfg.Tracing.Sampler] {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Tracing.Sampler),
		})
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}
	if cfg.Tracing.Exporter != "otlp" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.exporter",
			Message: fmt.Sprintf("unsupported exporter %q: must be 'otlp'", cfg.Tracing.Exporter),
		})
	}

	// Validate health check paths
	if cfg.Health.LivenessPath == "" || cfg.Health.LivenessPath[0] != '/' {
		errs = append(errs, FieldError{
			Field:   "telemetry.health.liveness_path",
			Message: "liveness path must start with /",
		})
	}
	if cfg.Health.ReadinessPath == "" || cfg.Health.ReadinessPath[0] != '/' {
		errs = append(errs, FieldError{
			Field:   "telemetry.health.readiness_path",
			Message: "readiness path must start with /",
		})
	}
	if cfg.Health.CheckTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.health.check_timeout",
			Message: "check timeout must be positive",
		})
	}

	return errs
}
