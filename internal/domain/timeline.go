package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field bounds shared by service validation and the REST layer.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxProjectNameLength = 100

	// MaxConnectionOrder is the largest sort order the int4 column holds.
	MaxConnectionOrder = 1<<31 - 1
)

// Project groups the events of one user's timeline.
type Project struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	EventCount int // computed field, not stored in DB
}

// Position is an opaque canvas coordinate owned by the caller.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event is a node of the timeline graph.
type Event struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Date        EventDate
	Position    Position
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Nexts are outgoing connections ordered by Order, then ID.
	Nexts []Connection
	// Prevs are incoming connections, unordered.
	Prevs []Connection
}

// Connection is a directed, typed edge between two events.
type Connection struct {
	ID        uuid.UUID
	SourceID  uuid.UUID
	TargetID  uuid.UUID
	Type      ConnectionType
	Order     int
	CreatedAt time.Time
}

// EventUpdateParams carries a partial update. Nil fields are left unchanged.
type EventUpdateParams struct {
	Title       *string
	Description *string // ptr("") clears the description
	Date        *EventDate
	Position    *Position
}

// IsEmpty reports whether no field is set.
func (p EventUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil && p.Position == nil
}

// AuditRecord logs a mutation on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// EventFilter narrows an event listing to a subset of the tenant's events.
type EventFilter struct {
	// ProjectID restricts results to one project. nil means every project
	// owned by the user.
	ProjectID *uuid.UUID

	// Undated, when set, keeps only events with (false) or without (true) a date.
	Undated *bool
}
