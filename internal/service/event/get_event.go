package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// GetEvent returns one of the authenticated user's events with its
// incoming and outgoing connections.
func (s *Service) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	e, err := s.events.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return e, nil
}

// ListEvents returns the authenticated user's events matching filter,
// newest first. Outgoing connections are ordered by order, then id.
func (s *Service) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}
