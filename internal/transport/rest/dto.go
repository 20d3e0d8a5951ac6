package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

type projectResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	EventCount int       `json:"eventCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:         p.ID,
		Name:       p.Name,
		EventCount: p.EventCount,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type connectionResponse struct {
	ID        uuid.UUID             `json:"id"`
	SourceID  uuid.UUID             `json:"sourceId"`
	TargetID  uuid.UUID             `json:"targetEventId"`
	Type      domain.ConnectionType `json:"type"`
	Order     int                   `json:"order"`
	CreatedAt time.Time             `json:"createdAt"`
}

func toConnectionResponse(c *domain.Connection) connectionResponse {
	return connectionResponse{
		ID:        c.ID,
		SourceID:  c.SourceID,
		TargetID:  c.TargetID,
		Type:      c.Type,
		Order:     c.Order,
		CreatedAt: c.CreatedAt,
	}
}

func toConnectionResponses(conns []domain.Connection) []connectionResponse {
	out := make([]connectionResponse, len(conns))
	for i := range conns {
		out[i] = toConnectionResponse(&conns[i])
	}
	return out
}

type eventResponse struct {
	ID          uuid.UUID            `json:"id"`
	ProjectID   uuid.UUID            `json:"projectId"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Date        domain.EventDate     `json:"date"`
	Position    domain.Position      `json:"position"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Nexts       []connectionResponse `json:"nexts"`
	Prevs       []connectionResponse `json:"prevs"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Position:    e.Position,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Nexts:       toConnectionResponses(e.Nexts),
		Prevs:       toConnectionResponses(e.Prevs),
	}
}

type graphNodeResponse struct {
	ID    uuid.UUID        `json:"id"`
	Title string           `json:"title"`
	Date  domain.EventDate `json:"date"`
	Nexts []uuid.UUID      `json:"nexts"`
}

type graphResponse struct {
	Nodes []graphNodeResponse `json:"nodes"`
}

func toGraphResponse(g *timeline.Graph) graphResponse {
	resp := graphResponse{Nodes: make([]graphNodeResponse, 0, g.Len())}
	for _, id := range g.IDs() {
		n, _ := g.Node(id)
		resp.Nodes = append(resp.Nodes, graphNodeResponse{
			ID:    n.ID,
			Title: n.Event.Title,
			Date:  n.Event.Date,
			Nexts: append([]uuid.UUID{}, n.Nexts...),
		})
	}
	return resp
}
