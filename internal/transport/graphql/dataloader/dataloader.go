// Package dataloader provides per-request DataLoaders that batch the
// Project.events and Event.nexts/prevs resolvers into single SQL calls.
// Loaders call repositories directly; ownership is enforced in SQL by
// passing the request's user id.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type eventRepo interface {
	ListByProjectIDs(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) ([]domain.Event, error)
}

type connectionRepo interface {
	ListByEventIDs(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) ([]domain.Connection, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Event      eventRepo
	Connection connectionRepo
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	EventsByProjectID *dataloader.Loader[uuid.UUID, []domain.Event]
	// ConnectionsByEventID yields every connection touching the event, in
	// both directions, ordered by sort order then id.
	ConnectionsByEventID *dataloader.Loader[uuid.UUID, []domain.Connection]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		EventsByProjectID:    newLoader(newEventsBatchFn(repos.Event)),
		ConnectionsByEventID: newLoader(newConnectionsBatchFn(repos.Connection)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
