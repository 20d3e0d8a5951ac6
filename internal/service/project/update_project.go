package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// UpdateProject renames a project of the authenticated user.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.SanitizeText(input.Name)

	var updated *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside transaction for accurate audit diff.
		old, getErr := s.projects.GetByID(txCtx, userID, input.ProjectID)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.projects.Update(txCtx, userID, input.ProjectID, name)
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		if old.Name == updated.Name {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &input.ProjectID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"name": map[string]any{"old": old.Name, "new": updated.Name},
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

	s.log.InfoContext(ctx, "project updated",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
	)

	return updated, nil
}
