package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// UpdateEvent applies a partial update to one of the authenticated user's events.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Fetch old state inside transaction for accurate audit diff.
		old, getErr := s.events.Resolve(txCtx, userID, input.EventID)
		if getErr != nil {
			return fmt.Errorf("get event: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.events.Update(txCtx, userID, input.EventID, params)
		if updateErr != nil {
			return fmt.Errorf("update event: %w", updateErr)
		}

		if touchErr := s.projects.Touch(txCtx, updated.ProjectID); touchErr != nil {
			return fmt.Errorf("touch project: %w", touchErr)
		}

		changes := diffEvent(old, updated)
		// Skip audit if nothing actually changed.
		if len(changes) == 0 {
			return nil
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeEvent,
			EntityID:   &input.EventID,
			Action:     domain.AuditActionUpdate,
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

	s.log.InfoContext(ctx, "event updated",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)

	return updated, nil
}

func diffEvent(old, updated *domain.Event) map[string]any {
	changes := map[string]any{}

	if old.Title != updated.Title {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if oldDesc, newDesc := deref(old.Description), deref(updated.Description); oldDesc != newDesc {
		changes["description"] = map[string]any{"old": oldDesc, "new": newDesc}
	}
	if !old.Date.Equal(updated.Date) {
		changes["date"] = map[string]any{"old": old.Date.String(), "new": updated.Date.String()}
	}
	if old.Position != updated.Position {
		changes["position"] = map[string]any{"old": old.Position, "new": updated.Position}
	}

	return changes
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
