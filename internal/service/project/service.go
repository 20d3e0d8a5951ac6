// Package project manages the user's timeline projects.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Project, error)
	GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, name string) (*domain.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	LockOwner(ctx context.Context, userID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project management operations.
type Service struct {
	projects    projectRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
	maxProjects int
}

// NewService creates a new Project service. maxProjects caps how many
// projects a single user may own.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	audit auditLogger,
	tx txManager,
	maxProjects int,
) *Service {
	return &Service{
		projects:    projects,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "project"),
		maxProjects: maxProjects,
	}
}
