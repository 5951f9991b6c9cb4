// Package config provides configuration management for tokenscope.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
//  3. Like 2, falling back to the defaults when the file does not exist:
//     cfg, err := config.LoadOrDefault("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention TOKENSCOPE_SECTION_FIELD.
// For example:
//
//   - TOKENSCOPE_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - TOKENSCOPE_PROCESSING_TOKENS_COUNTER overrides processing.tokens.counter
//   - TOKENSCOPE_PROCESSING_COMPRESSION_ADVANCED takes a comma-separated list
//   - TOKENSCOPE_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
//	if err := config.Initialize("config.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	cfg := config.GetConfig()
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Example Configuration
//
//	server:
//	  listen_address: "127.0.0.1:8000"
//
//	processing:
//	  tokens:
//	    counter: "tiktoken"
//	    model: "gpt-4"
//	  compression:
//	    stopword_threshold: 5000
//	    advanced: ["Filler phrase removal", "Contraction conversion"]
//
//	catalog:
//	  source: "file"
//	  path: "./pricing.yaml"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
package config
