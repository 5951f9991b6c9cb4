// Package metrics provides Prometheus metrics collection for tokenscope.
//
// # Metrics Categories
//
//   - Analysis Metrics: analysis count by status, duration, token counts
//     before and after compression, reduction percentage
//   - Technique Metrics: how often each compression technique ran
//   - HTTP Metrics: requests by route, method and status code
//   - Catalog Metrics: number of priced models and the catalog age
//   - Cache Metrics: tokenizer cache hits and misses
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	collector.RecordAnalysis(metrics.StatusSuccess, elapsed,
//		res.OriginalTokens, res.CompressedTokens, res.ReductionPercentage,
//		res.TechniquesApplied)
//	collector.SetCatalogModels(cat.Len())
//
// The collector implements tokens.CacheObserver and the catalog auditor's
// AgeRecorder, so it can be handed to both directly.
//
// # Prometheus Endpoint
//
// All metrics are exposed through Handler in the Prometheus exposition
// format:
//
//	# HELP tokenscope_analyzer_analyses_total Total number of text analyses by status
//	# TYPE tokenscope_analyzer_analyses_total counter
//	tokenscope_analyzer_analyses_total{status="success"} 42
//
// # Disabled Metrics
//
// With MetricsConfig.Enabled false, metrics are still registered but every
// Record and Set method returns immediately.
package metrics
