package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// CreateProject creates a new project for the authenticated user.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.SanitizeText(input.Name)

	var project *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Held until commit so a concurrent create cannot pass the same count.
		if lockErr := s.projects.LockOwner(txCtx, userID); lockErr != nil {
			return fmt.Errorf("lock owner: %w", lockErr)
		}

		count, countErr := s.projects.Count(txCtx, userID)
		if countErr != nil {
			return fmt.Errorf("count projects: %w", countErr)
		}
		if count >= s.maxProjects {
			return domain.NewValidationError("projects", fmt.Sprintf("limit reached (max %d)", s.maxProjects))
		}

		var createErr error
		project, createErr = s.projects.Create(txCtx, userID, name)
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &project.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", project.ID.String()),
	)

	return project, nil
}
