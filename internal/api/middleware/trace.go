package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/metadesc-api/internal/api/shared"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID and a request-scoped logger carrying it to
// the request context. It reuses chi's request id when one is present and
// must run before any handler that logs.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				ctx = shared.WithTraceID(ctx, reqID)
			} else {
				ctx = shared.SetTraceID(ctx)
			}

			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
