// Package server exposes tokenscope analyses over HTTP.
//
// Routes:
//
//	GET  /          service description
//	GET  /models    pricing catalog grouped by provider
//	POST /analyze   full cost report for an uploaded text
//	POST /compress  compression result only
//	GET  /version   build information
//	GET  /health    liveness probe
//	GET  /ready     readiness probe (catalog, tokenizer)
//	GET  /metrics   Prometheus exposition, when metrics are enabled
//
// /analyze and /compress accept either a multipart form with a "file"
// field or the raw text as the request body. Bodies over
// server.max_upload_bytes get 413; non-UTF-8 input gets 400.
//
// Analysis errors map to status codes:
//
//	empty input       400
//	no model fits     422
//	tokenizer failure 502
//	anything else     500
//
// The router is chi with the middleware chain from server/middleware,
// wrapped in otelhttp so incoming traceparent headers parent the analysis
// spans.
//
//	srv := server.New(cfg, server.Deps{
//		Processor: processor,
//		Catalog:   cat,
//		Health:    tel.Health(),
//		Metrics:   tel.Metrics(),
//	})
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
package server
