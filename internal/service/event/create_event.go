package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// CreateEvent adds an event to one of the authenticated user's projects.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := domain.Event{
		ProjectID:   input.ProjectID,
		Title:       domain.SanitizeText(input.Title),
		Description: domain.SanitizeOptional(input.Description),
		Date:        input.Date,
		Position:    input.Position,
	}

	var created *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Row lock makes the count below exact for the rest of the transaction.
		project, getErr := s.projects.GetForUpdate(txCtx, userID, input.ProjectID)
		if getErr != nil {
			return fmt.Errorf("get project: %w", getErr)
		}
		if project.EventCount >= s.maxEvents {
			return domain.NewValidationError("events", fmt.Sprintf("limit reached (max %d per project)", s.maxEvents))
		}

		var createErr error
		created, createErr = s.events.Create(txCtx, userID, draft)
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}

		if touchErr := s.projects.Touch(txCtx, project.ID); touchErr != nil {
			return fmt.Errorf("touch project: %w", touchErr)
		}

		changes := map[string]any{
			"title": map[string]any{"new": created.Title},
		}
		if created.Date.IsSet() {
			changes["date"] = map[string]any{"new": created.Date.String()}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.EventCreated()
	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("project_id", created.ProjectID.String()),
		slog.String("event_id", created.ID.String()),
	)

	return created, nil
}
