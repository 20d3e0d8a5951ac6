// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

type ConnectInput struct {
	SourceID uuid.UUID `json:"sourceId"`
	TargetID uuid.UUID `json:"targetId"`
	// Defaults to LINEAR.
	Type  *domain.ConnectionType `json:"type,omitempty"`
	Order *int                   `json:"order,omitempty"`
}

type CreateEventInput struct {
	ProjectID   uuid.UUID        `json:"projectId"`
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Position    *domain.Position `json:"position,omitempty"`
}

type CreateProjectInput struct {
	Name string `json:"name"`
}

type DisconnectInput struct {
	SourceID uuid.UUID `json:"sourceId"`
	TargetID uuid.UUID `json:"targetId"`
}

type Mutation struct {
}

type Query struct {
}

type RenameProjectInput struct {
	ProjectID uuid.UUID `json:"projectId"`
	Name      string    `json:"name"`
}

type ValidateConnectionInput struct {
	SourceID uuid.UUID             `json:"sourceId"`
	TargetID uuid.UUID             `json:"targetId"`
	Type     domain.ConnectionType `json:"type"`
}
