package config

import "time"

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and uses the simple counter so tests
// never load tokenizer data.
func NewTestConfig() *ConfigBuilder {
	cfg := Default()
	cfg.Processing.Tokens.Counter = "simple"
	return &ConfigBuilder{cfg: *cfg}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithListenAddress sets the server listen address.
func (b *ConfigBuilder) WithListenAddress(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddress = addr
	return b
}

// WithRequestTimeout sets the per-request timeout.
func (b *ConfigBuilder) WithRequestTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.RequestTimeout = d
	return b
}

// WithCounter sets the token counter type.
func (b *ConfigBuilder) WithCounter(counter string) *ConfigBuilder {
	b.cfg.Processing.Tokens.Counter = counter
	return b
}

// WithAdvanced sets the optional compression passes.
func (b *ConfigBuilder) WithAdvanced(names ...string) *ConfigBuilder {
	b.cfg.Processing.Compression.Advanced = names
	return b
}

// WithCatalog sets the catalog source and path.
func (b *ConfigBuilder) WithCatalog(source, path string) *ConfigBuilder {
	b.cfg.Catalog.Source = source
	b.cfg.Catalog.Path = path
	return b
}

// WithLogging sets the logging level and format.
func (b *ConfigBuilder) WithLogging(level, format string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Level = level
	b.cfg.Telemetry.Logging.Format = format
	return b
}
