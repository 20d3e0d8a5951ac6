package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// DeleteEvent deletes an event together with every connection touching it.
func (s *Service) DeleteEvent(ctx context.Context, input DeleteEventInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var e *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		e, getErr = s.events.GetByID(txCtx, userID, input.EventID)
		if getErr != nil {
			return fmt.Errorf("get event: %w", getErr)
		}

		if deleteErr := s.events.Delete(txCtx, userID, input.EventID); deleteErr != nil {
			return fmt.Errorf("delete event: %w", deleteErr)
		}

		if touchErr := s.projects.Touch(txCtx, e.ProjectID); touchErr != nil {
			return fmt.Errorf("touch project: %w", touchErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &input.EventID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title":       map[string]any{"old": e.Title},
				"connections": len(e.Nexts) + len(e.Prevs),
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

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)

	return nil
}
