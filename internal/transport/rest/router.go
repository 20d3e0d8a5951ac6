package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// RouterDeps collects everything NewRouter wires together.
type RouterDeps struct {
	Logger   *slog.Logger
	Health   *HealthHandler
	Projects *ProjectHandler
	Events   *EventHandler
	Timeline *TimelineHandler
	// GraphQL serves POST /query when set.
	GraphQL http.Handler

	Tokens   tokenValidator
	Observer httpObserver
	// MetricsHandler serves the Prometheus exposition on /metrics.
	MetricsHandler http.Handler
	// Limiter throttles every request when set.
	Limiter *middleware.RateLimiter

	CORS         config.CORSConfig
	MaxBodyBytes int64
}

// NewRouter builds the HTTP handler: probes and metrics are public, every
// /api route requires a principal.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	public := func(pattern string, h http.Handler) {
		mux.Handle(pattern, middleware.Route(pattern, h))
	}
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Route(pattern, middleware.RequireAuth(h)))
	}

	public("GET /live", http.HandlerFunc(d.Health.Live))
	public("GET /ready", http.HandlerFunc(d.Health.Ready))
	public("GET /health", http.HandlerFunc(d.Health.Health))
	if d.MetricsHandler != nil {
		public("GET /metrics", d.MetricsHandler)
	}

	api("GET /api/projects", d.Projects.List)
	api("POST /api/projects", d.Projects.Create)
	api("POST /api/projects/import", d.Projects.ImportNew)
	api("GET /api/projects/{id}", d.Projects.Get)
	api("PUT /api/projects/{id}", d.Projects.Update)
	api("DELETE /api/projects/{id}", d.Projects.Delete)
	api("POST /api/projects/{id}/import", d.Projects.Import)

	api("GET /api/events", d.Events.List)
	api("POST /api/events", d.Events.Create)
	api("GET /api/events/{id}", d.Events.Get)
	api("PUT /api/events/{id}", d.Events.Update)
	api("DELETE /api/events/{id}", d.Events.Delete)
	api("POST /api/events/{id}/connect", d.Events.Connect)
	api("DELETE /api/events/{id}/connect", d.Events.Disconnect)

	api("POST /api/timeline/validate", d.Timeline.Validate)
	api("GET /api/timeline/analysis", d.Timeline.Analysis)
	api("GET /api/timeline/graph", d.Timeline.Graph)

	if d.GraphQL != nil {
		api("POST /query", d.GraphQL.ServeHTTP)
	}

	mws := []middleware.Middleware{middleware.RequestID}
	if d.Observer != nil {
		mws = append(mws, middleware.Metrics(d.Observer))
	}
	mws = append(mws,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)
	if d.Limiter != nil {
		mws = append(mws, d.Limiter.Limit())
	}
	mws = append(mws,
		middleware.Auth(d.Tokens),
		middleware.MaxBody(d.MaxBodyBytes),
	)

	return middleware.Chain(mws...)(mux)
}
