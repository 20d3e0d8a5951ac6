// Package event manages timeline events and the connections between them,
// and exposes the temporal validator, the consistency analysis and the graph
// view over the authenticated user's events.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, userID uuid.UUID, e domain.Event) (*domain.Event, error)
	Resolve(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

type projectRepo interface {
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	GetForUpdate(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	Touch(ctx context.Context, projectID uuid.UUID) error
}

type connectionRepo interface {
	Create(ctx context.Context, c domain.Connection) (*domain.Connection, error)
	Exists(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error)
	DeleteByPair(ctx context.Context, userID, sourceID, targetID uuid.UUID) (*domain.Connection, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	EventCreated()
	ConnectionCreated(ct domain.ConnectionType)
	ConnectionRejected()
	AnalysisCompleted(flagged int)
}

// Service provides event, connection and analysis operations.
type Service struct {
	events      eventRepo
	projects    projectRepo
	connections connectionRepo
	audit       auditLogger
	tx          txManager
	metrics     metricsRecorder
	log         *slog.Logger
	maxEvents   int
}

// NewService creates a new Event service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	projects projectRepo,
	connections connectionRepo,
	audit auditLogger,
	tx txManager,
	metrics metricsRecorder,
	cfg config.TimelineConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "event"),
		events:      events,
		projects:    projects,
		connections: connections,
		audit:       audit,
		tx:          tx,
		metrics:     metrics,
		maxEvents:   cfg.MaxEventsPerProject,
	}
}
