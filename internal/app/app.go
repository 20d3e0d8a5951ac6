package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/auth"
	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/observability"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/ariane-backend/internal/transport/middleware"
	"github.com/heartmarshall/ariane-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, postgres.MigrateUp, logger); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	metrics := observability.NewMetrics()
	svc := NewServices(pool, cfg.Timeline, logger, metrics)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:         logger,
		Health:         rest.NewHealthHandler(pool, BuildVersion()),
		Projects:       rest.NewProjectHandler(svc.Projects, svc.Import, logger),
		Events:         rest.NewEventHandler(svc.Events, logger),
		Timeline:       rest.NewTimelineHandler(svc.Events, logger),
		GraphQL:        graphql.NewHandler(logger,
			resolver.NewResolver(logger, svc.Projects, svc.Events, svc.Events),
			svc.LoaderRepos,
		),
		Tokens:         tokens,
		Observer:       metrics,
		MetricsHandler: metrics.Handler(),
		Limiter:        limiter,
		CORS:           cfg.CORS,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv on ln until ctx is done, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
