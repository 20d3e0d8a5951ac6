package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Events by ProjectID
// ---------------------------------------------------------------------------

func newEventsBatchFn(repo eventRepo) dataloader.BatchFunc[uuid.UUID, []domain.Event] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Event] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.Event](len(keys), domain.ErrUnauthorized)
		}

		events, err := repo.ListByProjectIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[[]domain.Event](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Event, len(keys))
		for _, e := range events {
			grouped[e.ProjectID] = append(grouped[e.ProjectID], e)
		}

		return mapResults(keys, grouped, emptySlice[domain.Event])
	}
}

// ---------------------------------------------------------------------------
// Connections by EventID
// ---------------------------------------------------------------------------

func newConnectionsBatchFn(repo connectionRepo) dataloader.BatchFunc[uuid.UUID, []domain.Connection] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Connection] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[[]domain.Connection](len(keys), domain.ErrUnauthorized)
		}

		conns, err := repo.ListByEventIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[[]domain.Connection](len(keys), err)
		}

		// A connection between two requested events lands under both keys.
		grouped := make(map[uuid.UUID][]domain.Connection, len(keys))
		for _, c := range conns {
			grouped[c.SourceID] = append(grouped[c.SourceID], c)
			if c.TargetID != c.SourceID {
				grouped[c.TargetID] = append(grouped[c.TargetID], c)
			}
		}

		return mapResults(keys, grouped, emptySlice[domain.Connection])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
