package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// DeleteProject deletes a project together with its events and connections.
func (s *Service) DeleteProject(ctx context.Context, input DeleteProjectInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var project *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		project, getErr = s.projects.GetByID(txCtx, userID, input.ProjectID)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}

		if deleteErr := s.projects.Delete(txCtx, userID, input.ProjectID); deleteErr != nil {
			return fmt.Errorf("delete project: %w", deleteErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &input.ProjectID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":        map[string]any{"old": project.Name},
				"event_count": project.EventCount,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("user_id", userID.String()),
		slog.String("project_id", input.ProjectID.String()),
		slog.Int("event_count", project.EventCount),
	)

	return nil
}
