// Package project implements the Project repository using PostgreSQL.
// Every query filters on projects.user_id; a row owned by another user is
// indistinguishable from a missing one.
package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const projectColumns = `p.id, p.user_id, p.name, p.created_at, p.updated_at`

const getByIDSQL = `
SELECT ` + projectColumns + `,
    (SELECT count(*) FROM events e WHERE e.project_id = p.id) AS event_count
FROM projects p
WHERE p.id = $1 AND p.user_id = $2`

const getForUpdateSQL = getByIDSQL + `
FOR UPDATE OF p`

// lockOwnerSQL serializes project creation per user for the rest of the
// transaction. Advisory because there is no parent row to lock.
const lockOwnerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

const listSQL = `
SELECT ` + projectColumns + `, count(e.id) AS event_count
FROM projects p
LEFT JOIN events e ON e.project_id = p.id
WHERE p.user_id = $1
GROUP BY p.id
ORDER BY p.updated_at DESC, p.id`

const createSQL = `
INSERT INTO projects AS p (user_id, name)
VALUES ($1, $2)
RETURNING ` + projectColumns + `, 0`

const updateSQL = `
UPDATE projects AS p SET name = $3
WHERE p.id = $1 AND p.user_id = $2
RETURNING ` + projectColumns + `,
    (SELECT count(*) FROM events e WHERE e.project_id = p.id)`

const touchSQL = `UPDATE projects SET updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM projects WHERE id = $1 AND user_id = $2`

const countSQL = `SELECT count(*) FROM projects WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a project with its event count.
// Returns domain.ErrNotFound if the project does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, getByIDSQL, projectID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &p, nil
}

// GetForUpdate is GetByID that also row-locks the project until the
// surrounding transaction ends. Concurrent event inserts into the same
// project queue behind it, which keeps the per-project cap exact.
func (r *Repo) GetForUpdate(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, getForUpdateSQL, projectID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &p, nil
}

// LockOwner takes a transaction-scoped advisory lock on the user so that
// Count followed by Create cannot race another CreateProject. Outside a
// transaction the lock is released as soon as the statement finishes.
func (r *Repo) LockOwner(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, lockOwnerSQL, userID); err != nil {
		return fmt.Errorf("lock project owner: %w", err)
	}

	return nil
}

// List returns the user's projects, most recently updated first.
// Returns an empty slice (not nil) when the user has no projects.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if projects == nil {
		projects = []domain.Project{}
	}

	return projects, nil
}

// Count returns the number of projects owned by the user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new project owned by userID. The name must already be sanitized.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, createSQL, userID, name))
	if err != nil {
		return nil, postgres.MapError(err, "project", uuid.Nil)
	}

	return &p, nil
}

// Update renames a project.
// Returns domain.ErrNotFound if the project does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, projectID uuid.UUID, name string) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, updateSQL, projectID, userID, name))
	if err != nil {
		return nil, postgres.MapError(err, "project", projectID)
	}

	return &p, nil
}

// Touch bumps updated_at so the project sorts first in List. Callers must
// have resolved ownership already.
func (r *Repo) Touch(ctx context.Context, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, touchSQL, projectID); err != nil {
		return postgres.MapError(err, "project", projectID)
	}

	return nil
}

// Delete removes a project. CASCADE deletes its events and their connections.
// Returns domain.ErrNotFound if the project does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, projectID, userID)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanProject(row pgx.Row) (domain.Project, error) {
	var (
		p          domain.Project
		createdAt  time.Time
		updatedAt  time.Time
		eventCount int64
	)

	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &createdAt, &updatedAt, &eventCount); err != nil {
		return domain.Project{}, err
	}

	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	p.EventCount = int(eventCount)

	return p, nil
}
