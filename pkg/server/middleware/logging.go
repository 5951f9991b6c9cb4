package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"blinkdeploys/tokenscope/pkg/telemetry/logging"
)

// Logging logs every request with its status and latency. Server errors
// log at error level, client errors at warn.
//
// Log format (JSON):
//
//	{
//	  "time": "2026-03-01T10:30:00Z",
//	  "level": "INFO",
//	  "msg": "request completed",
//	  "component": "server",
//	  "request_id": "1f0c...",
//	  "method": "POST",
//	  "path": "/analyze",
//	  "status": 200,
//	  "bytes": 4312,
//	  "latency_ms": 12
//	}
func Logging(next http.Handler) http.Handler {
	base := slog.Default().With("component", "server")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		logger := logging.FromContext(ctx, base)

		logger.DebugContext(ctx, "request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		sr := newStatusRecorder(w)
		next.ServeHTTP(sr, r)

		level := slog.LevelInfo
		switch {
		case sr.statusCode >= 500:
			level = slog.LevelError
		case sr.statusCode >= 400:
			level = slog.LevelWarn
		}

		logger.Log(ctx, level, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.statusCode,
			"bytes", sr.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}
