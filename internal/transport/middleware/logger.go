package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// matched route, status code, duration, and context identifiers
// (request_id, user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)
			ctx := ctxutil.WithRequestInfo(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if route := ctxutil.RouteFromCtx(ctx); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			if userID, ok := ctxutil.RecordedUserID(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}
