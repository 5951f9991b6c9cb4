package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"blinkdeploys/tokenscope/pkg/telemetry/logging"
)

// Recovery recovers from panics in HTTP handlers and returns a 500 JSON
// error. The panic and stack are logged; clients see a generic message.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.FromContext(r.Context(), slog.Default()).ErrorContext(r.Context(), "panic in handler",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			WriteError(w, r, http.StatusInternalServerError, "an internal error occurred")
		}()

		next.ServeHTTP(w, r)
	})
}
