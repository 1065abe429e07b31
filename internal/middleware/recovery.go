package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"pitchdeck/internal/httputil"
)

// Recovery turns a handler panic into a problem+json 500. If the handler had
// already started its response, the panic is only logged: a second status
// line cannot be sent.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				started := rec.status != 0
				logger.Error("handler panic",
					"panic", v,
					"method", r.Method,
					"path", r.URL.Path,
					"session_id", httputil.GetSessionID(r),
					"response_started", started,
					"stack", string(debug.Stack()),
				)
				if !started {
					httputil.RespondError(rec, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
