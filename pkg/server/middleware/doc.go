// Package middleware provides the HTTP middleware chain of the tokenscope
// server.
//
// The server applies them outermost first:
//
//	r.Use(middleware.Recovery)
//	r.Use(middleware.RequestID)
//	r.Use(middleware.Logging)
//	r.Use(middleware.Metrics(collector))
//	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
//
// Every error response is a JSON ErrorResponse carrying the request ID.
package middleware
