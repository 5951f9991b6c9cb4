// Package health provides liveness and readiness probes for the tokenscope
// HTTP server.
//
// Liveness only reports that the process is up. Readiness runs every
// registered check concurrently, each under its own timeout, and answers
// 503 when any of them fails. The server registers two checks:
//
//   - catalog: the pricing catalog has at least one entry
//   - tokenizer: the configured token counter counts a probe text
//
// Usage:
//
//	checker := health.New(cfg.Telemetry.Health.CheckTimeout)
//	checker.RegisterCheck("catalog", health.CatalogCheck(cat))
//	checker.RegisterCheck("tokenizer", health.CounterCheck(counter, "gpt-4"))
//
//	r.Get("/health", checker.LivenessHandler())
//	r.Get("/ready", checker.ReadinessHandler())
package health
