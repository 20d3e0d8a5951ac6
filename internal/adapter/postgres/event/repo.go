// Package event implements the Event repository using PostgreSQL.
//
// Events carry no user_id of their own: ownership is resolved by joining
// events.project_id to projects.user_id on every read and write.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var eventColumns = []string{
	"e.id", "e.project_id", "e.title", "e.description", "e.date",
	"e.position_x", "e.position_y", "e.created_at", "e.updated_at",
}

const returningColumns = `id, project_id, title, description, date, position_x, position_y, created_at, updated_at`

const createSQL = `
INSERT INTO events (project_id, title, description, date, position_x, position_y)
SELECT p.id, $3::text, $4::text, $5::timestamptz, $6::double precision, $7::double precision
FROM projects p
WHERE p.id = $1 AND p.user_id = $2
RETURNING ` + returningColumns

const deleteSQL = `
DELETE FROM events e
USING projects p
WHERE e.id = $1 AND p.id = e.project_id AND p.user_id = $2`

const connectionsByEventIDsSQL = `
SELECT id, source_id, target_id, type, sort_order, created_at
FROM connections
WHERE source_id = ANY($1::uuid[]) OR target_id = ANY($1::uuid[])
ORDER BY sort_order, id`

// ownedSelect starts a select over events owned by userID.
func ownedSelect(userID uuid.UUID) sq.SelectBuilder {
	return postgres.Builder.
		Select(eventColumns...).
		From("events e").
		Join("projects p ON p.id = e.project_id").
		Where(sq.Eq{"p.user_id": userID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Resolve returns the event without its connections. It is the ownership
// guard for operations that only need to know the event is visible.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) Resolve(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	query, args, err := ownedSelect(userID).Where(sq.Eq{"e.id": eventID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve event query: %w", err)
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	return &e, nil
}

// GetByID returns the event with its outgoing and incoming connections.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	e, err := r.Resolve(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	events := []domain.Event{*e}
	if err := r.attachConnections(ctx, events); err != nil {
		return nil, err
	}

	return &events[0], nil
}

// List returns the user's events matching f, newest first, each with its
// connections attached. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.Event, error) {
	query, args, err := applyFilter(ownedSelect(userID), f).
		OrderBy("e.created_at DESC", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	if len(events) == 0 {
		return []domain.Event{}, nil
	}

	if err := r.attachConnections(ctx, events); err != nil {
		return nil, err
	}

	return events, nil
}

// ListByProjectIDs returns the user's events in any of projectIDs, newest
// first, without connections. Projects owned by another user contribute
// nothing.
func (r *Repo) ListByProjectIDs(ctx context.Context, userID uuid.UUID, projectIDs []uuid.UUID) ([]domain.Event, error) {
	if len(projectIDs) == 0 {
		return []domain.Event{}, nil
	}

	query, args, err := ownedSelect(userID).
		Where(sq.Eq{"e.project_id": projectIDs}).
		OrderBy("e.created_at DESC", "e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events by projects query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("events by projects: %w", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("events by projects: %w", err)
	}

	if events == nil {
		events = []domain.Event{}
	}

	return events, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts e into its project. Text fields must already be sanitized.
// Returns domain.ErrNotFound if the project does not exist or belongs to another user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, e domain.Event) (*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEvent(q.QueryRow(ctx, createSQL,
		e.ProjectID, userID,
		e.Title, e.Description, e.Date.Ptr(), e.Position.X, e.Position.Y,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", e.ProjectID)
	}

	created.Nexts = []domain.Connection{}
	created.Prevs = []domain.Connection{}
	return &created, nil
}

// Update applies the non-nil fields of params and returns the event with
// its connections. Text fields must already be sanitized.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, eventID)
	}

	b := postgres.Builder.Update("events")
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			b = b.Set("description", nil)
		} else {
			b = b.Set("description", *params.Description)
		}
	}
	if params.Date != nil {
		b = b.Set("date", params.Date.Ptr())
	}
	if params.Position != nil {
		b = b.Set("position_x", params.Position.X).Set("position_y", params.Position.Y)
	}

	query, args, err := b.
		Where(sq.Eq{"id": eventID}).
		Where("project_id IN (SELECT id FROM projects WHERE user_id = ?)", userID).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event query: %w", err)
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	events := []domain.Event{e}
	if err := r.attachConnections(ctx, events); err != nil {
		return nil, err
	}

	return &events[0], nil
}

// Delete removes an event. CASCADE deletes every connection touching it.
// Returns domain.ErrNotFound if the event does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, eventID, userID)
	if err != nil {
		return postgres.MapError(err, "event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Connection assembly
// ---------------------------------------------------------------------------

// attachConnections loads every connection touching events in one query and
// fills Nexts (by sort order, then id) and Prevs.
func (r *Repo) attachConnections(ctx context.Context, events []domain.Event) error {
	ids := make([]uuid.UUID, len(events))
	index := make(map[uuid.UUID]int, len(events))
	for i := range events {
		ids[i] = events[i].ID
		index[events[i].ID] = i
		events[i].Nexts = []domain.Connection{}
		events[i].Prevs = []domain.Connection{}
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, connectionsByEventIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("load connections: %w", err)
	}

	conns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Connection, error) {
		return ScanConnection(row)
	})
	if err != nil {
		return fmt.Errorf("load connections: %w", err)
	}

	for _, c := range conns {
		if i, ok := index[c.SourceID]; ok {
			events[i].Nexts = append(events[i].Nexts, c)
		}
		if i, ok := index[c.TargetID]; ok {
			events[i].Prevs = append(events[i].Prevs, c)
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e           domain.Event
		description *string
		date        *time.Time
	)

	err := row.Scan(
		&e.ID, &e.ProjectID, &e.Title, &description, &date,
		&e.Position.X, &e.Position.Y, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}

	e.Description = description
	e.Date = domain.EventDateFromPtr(date)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()

	return e, nil
}

// ScanConnection scans the columns id, source_id, target_id, type,
// sort_order, created_at.
func ScanConnection(row pgx.Row) (domain.Connection, error) {
	var (
		c  domain.Connection
		ct string
	)

	if err := row.Scan(&c.ID, &c.SourceID, &c.TargetID, &ct, &c.Order, &c.CreatedAt); err != nil {
		return domain.Connection{}, err
	}

	parsed, err := domain.ParseConnectionType(ct)
	if err != nil {
		return domain.Connection{}, fmt.Errorf("connection %s: %w", c.ID, err)
	}
	c.Type = parsed
	c.CreatedAt = c.CreatedAt.UTC()

	return c, nil
}
