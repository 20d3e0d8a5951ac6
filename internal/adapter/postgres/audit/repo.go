// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + auditColumns

const getByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE user_id = $1 AND entity_type = $2 AND entity_id = $3
ORDER BY created_at DESC, id
LIMIT $4`

const getByUserSQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
// A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		record.ID, record.UserID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)

	created, err := scanAuditRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return created, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interfaces of the project, event and guest import services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the user's change history for one entity, newest first,
// limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByEntitySQL, userID, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	return collectRecords(rows)
}

// GetByUser returns audit log records for a user, newest first, with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by user: %w", err)
	}

	return collectRecords(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func collectRecords(rows pgx.Rows) ([]domain.AuditRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		return scanAuditRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit_records: %w", err)
	}

	if records == nil {
		records = []domain.AuditRecord{}
	}

	return records, nil
}

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)

	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)
	rec.CreatedAt = rec.CreatedAt.UTC()

	// changes: JSONB -> map[string]any
	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}

	return rec, nil
}
