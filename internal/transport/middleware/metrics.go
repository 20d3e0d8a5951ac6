package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics records request count and latency per matched route. Requests
// that match no route are reported under an empty route.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)
			ctx := ctxutil.WithRequestInfo(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			rec.ObserveHTTP(r.Method, ctxutil.RouteFromCtx(ctx), sw.status, time.Since(start))
		})
	}
}

// Route tags the request with the pattern it was registered under.
func Route(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.SetRoute(r.Context(), pattern)
		next.ServeHTTP(w, r)
	})
}
