package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres/connection"
	eventrepo "github.com/heartmarshall/ariane-backend/internal/adapter/postgres/event"
	projectrepo "github.com/heartmarshall/ariane-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/observability"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/dataloader"
)

// Services holds the domain services shared by the HTTP server and the CLI.
type Services struct {
	Projects *project.Service
	Events   *event.Service
	Import   *guestimport.Service

	// LoaderRepos backs the per-request GraphQL DataLoaders.
	LoaderRepos *dataloader.Repos
}

// NewServices wires repositories and services over pool.
func NewServices(pool *pgxpool.Pool, cfg config.TimelineConfig, logger *slog.Logger, metrics *observability.Metrics) *Services {
	tx := postgres.NewTxManager(pool)
	auditRepo := audit.New(pool)
	projects := projectrepo.New(pool)
	events := eventrepo.New(pool)
	connections := connection.New(pool)

	projectSvc := project.NewService(logger, projects, auditRepo, tx, cfg.MaxProjectsPerUser)
	eventSvc := event.NewService(logger, events, projects, connections, auditRepo, tx, metrics, cfg)
	importSvc := guestimport.NewService(logger, projectSvc, eventSvc, auditRepo, tx, metrics, cfg)

	return &Services{
		Projects:    projectSvc,
		Events:      eventSvc,
		Import:      importSvc,
		LoaderRepos: &dataloader.Repos{Event: events, Connection: connections},
	}
}
