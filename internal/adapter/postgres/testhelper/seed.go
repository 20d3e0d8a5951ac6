package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ariane-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh tenant id. Users live in the external auth
// component, so there is no row to insert.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedProject creates a project owned by userID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Project {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Project " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.Name, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedEvent creates an event in projectID. A nil date stores NULL.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, date *time.Time) domain.Event {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Event{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     "Event " + uniqueSuffix(),
		Date:      domain.EventDateFromPtr(date),
		Position:  domain.Position{X: 10, Y: 20},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, project_id, title, date, position_x, position_y, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ProjectID, e.Title, e.Date.Ptr(), e.Position.X, e.Position.Y, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return e
}

// SeedConnection creates a connection between two existing events.
func SeedConnection(t *testing.T, pool *pgxpool.Pool, sourceID, targetID uuid.UUID, ct domain.ConnectionType, order int) domain.Connection {
	t.Helper()

	c := domain.Connection{
		ID:        uuid.New(),
		SourceID:  sourceID,
		TargetID:  targetID,
		Type:      ct,
		Order:     order,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO connections (id, source_id, target_id, type, sort_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.SourceID, c.TargetID, string(c.Type), c.Order, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConnection: %v", err)
	}

	return c
}

// Date returns a UTC midnight timestamp pointer for seeding.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
