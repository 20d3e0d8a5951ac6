// Package connection implements the Connection repository using PostgreSQL.
// Callers resolve ownership of the endpoints through the event repository
// before writing; DeleteByPair re-checks it in SQL.
package connection

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

const connectionColumns = "id, source_id, target_id, type, sort_order, created_at"

// Repo provides connection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new connection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a connection.
// Returns domain.ErrConflict if the pair already exists and domain.ErrIntegrity
// if an endpoint vanished concurrently.
func (r *Repo) Create(ctx context.Context, c domain.Connection) (*domain.Connection, error) {
	query, args, err := postgres.Builder.
		Insert("connections").
		Columns("source_id", "target_id", "type", "sort_order").
		Values(c.SourceID, c.TargetID, string(c.Type), c.Order).
		Suffix("RETURNING " + connectionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create connection query: %w", err)
	}

	created, err := event.ScanConnection(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "connection", c.SourceID)
	}

	return &created, nil
}

// Exists reports whether a connection from sourceID to targetID exists.
func (r *Repo) Exists(ctx context.Context, sourceID, targetID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder.
		Select("1").
		From("connections").
		Where(sq.Eq{"source_id": sourceID, "target_id": targetID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build connection exists query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("connection exists: %w", err)
	}

	return exists, nil
}

// DeleteByPair removes the connection from sourceID to targetID and returns it.
// Returns domain.ErrNotFound if there is no such connection or its source
// belongs to another user.
func (r *Repo) DeleteByPair(ctx context.Context, userID, sourceID, targetID uuid.UUID) (*domain.Connection, error) {
	query, args, err := postgres.Builder.
		Delete("connections").
		Where(sq.Eq{"source_id": sourceID, "target_id": targetID}).
		Where(`source_id IN (
			SELECT e.id FROM events e JOIN projects p ON p.id = e.project_id WHERE p.user_id = ?
		)`, userID).
		Suffix("RETURNING " + connectionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete connection query: %w", err)
	}

	deleted, err := event.ScanConnection(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "connection", sourceID)
	}

	return &deleted, nil
}

const byEventIDsSQL = `
SELECT c.id, c.source_id, c.target_id, c.type, c.sort_order, c.created_at
FROM connections c
JOIN events s ON s.id = c.source_id
JOIN projects p ON p.id = s.project_id
WHERE p.user_id = $2
  AND (c.source_id = ANY($1::uuid[]) OR c.target_id = ANY($1::uuid[]))
ORDER BY c.sort_order, c.id`

// ListByEventIDs returns every connection touching any of eventIDs, ordered
// by sort order then id. Both endpoints share a project, so checking the
// source's owner is enough.
func (r *Repo) ListByEventIDs(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) ([]domain.Connection, error) {
	if len(eventIDs) == 0 {
		return []domain.Connection{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, byEventIDsSQL, eventIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("connections by events: %w", err)
	}

	conns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Connection, error) {
		return event.ScanConnection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("connections by events: %w", err)
	}

	if conns == nil {
		conns = []domain.Connection{}
	}

	return conns, nil
}
