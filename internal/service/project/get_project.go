package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// GetProject returns one of the authenticated user's projects.
func (s *Service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if projectID == uuid.Nil {
		return nil, domain.NewValidationError("project_id", "required")
	}

	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

// ListProjects returns the authenticated user's projects, most recently
// updated first, each with its event count.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	projects, err := s.projects.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}
