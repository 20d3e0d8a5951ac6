package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/generated"
)

// Date is the resolver for the date field.
func (r *eventResolver) Date(ctx context.Context, obj *domain.Event) (*time.Time, error) {
	return obj.Date.Ptr(), nil
}

// Nexts is the resolver for the nexts field.
func (r *eventResolver) Nexts(ctx context.Context, obj *domain.Event) ([]domain.Connection, error) {
	if obj.Nexts != nil {
		return obj.Nexts, nil
	}
	return r.loadConnections(ctx, obj.ID, func(c domain.Connection) bool { return c.SourceID == obj.ID })
}

// Prevs is the resolver for the prevs field.
func (r *eventResolver) Prevs(ctx context.Context, obj *domain.Event) ([]domain.Connection, error) {
	if obj.Prevs != nil {
		return obj.Prevs, nil
	}
	return r.loadConnections(ctx, obj.ID, func(c domain.Connection) bool { return c.TargetID == obj.ID })
}

// CreateEvent is the resolver for the createEvent field.
func (r *mutationResolver) CreateEvent(ctx context.Context, input generated.CreateEventInput) (*domain.Event, error) {
	in := event.CreateEventInput{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Date:        domain.EventDateFromPtr(input.Date),
	}
	if input.Position != nil {
		in.Position = *input.Position
	}
	return r.events.CreateEvent(ctx, in)
}

// DeleteEvent is the resolver for the deleteEvent field.
func (r *mutationResolver) DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.events.DeleteEvent(ctx, event.DeleteEventInput{EventID: id}); err != nil {
		return false, err
	}
	return true, nil
}

// ConnectEvents is the resolver for the connectEvents field.
func (r *mutationResolver) ConnectEvents(ctx context.Context, input generated.ConnectInput) (*domain.Connection, error) {
	in := event.ConnectInput{SourceID: input.SourceID, TargetID: input.TargetID}
	if input.Type != nil {
		in.Type = *input.Type
	}
	if input.Order != nil {
		in.Order = *input.Order
	}
	return r.events.Connect(ctx, in)
}

// DisconnectEvents is the resolver for the disconnectEvents field.
func (r *mutationResolver) DisconnectEvents(ctx context.Context, input generated.DisconnectInput) (bool, error) {
	err := r.events.Disconnect(ctx, event.DisconnectInput{SourceID: input.SourceID, TargetID: input.TargetID})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Event is the resolver for the event field.
func (r *queryResolver) Event(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.events.GetEvent(ctx, id)
}

// Events is the resolver for the events field.
func (r *queryResolver) Events(ctx context.Context, projectID *uuid.UUID, undated *bool) ([]domain.Event, error) {
	return r.events.ListEvents(ctx, domain.EventFilter{ProjectID: projectID, Undated: undated})
}

// Event returns generated.EventResolver implementation.
func (r *Resolver) Event() generated.EventResolver { return &eventResolver{r} }

type eventResolver struct{ *Resolver }

// loadConnections batches by event id and keeps the connections matching keep.
func (r *eventResolver) loadConnections(ctx context.Context, eventID uuid.UUID, keep func(domain.Connection) bool) ([]domain.Connection, error) {
	conns, err := dataloader.FromContext(ctx).ConnectionsByEventID.Load(ctx, eventID)()
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}

	out := make([]domain.Connection, 0, len(conns))
	for _, c := range conns {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}
