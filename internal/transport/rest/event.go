package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
)

type eventService interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, input event.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, input event.DeleteEventInput) error
	Connect(ctx context.Context, input event.ConnectInput) (*domain.Connection, error)
	Disconnect(ctx context.Context, input event.DisconnectInput) error
}

// EventHandler serves event and connection REST endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	ProjectID   uuid.UUID        `json:"projectId"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Date        domain.EventDate `json:"date"`
	Position    domain.Position  `json:"position"`
}

// updateEventRequest is a partial update. A null description or date
// clears the field; an absent one leaves it unchanged.
type updateEventRequest struct {
	Title       Optional[string]           `json:"title"`
	Description Optional[string]           `json:"description"`
	Date        Optional[domain.EventDate] `json:"date"`
	Position    Optional[domain.Position]  `json:"position"`
}

func (req updateEventRequest) input(id uuid.UUID) event.UpdateEventInput {
	input := event.UpdateEventInput{EventID: id}

	if req.Title.Set {
		// A null title is an attempt to clear a required field.
		t := req.Title.Value
		input.Title = &t
	}
	if req.Description.Set {
		d := ""
		if !req.Description.Null {
			d = req.Description.Value
		}
		input.Description = &d
	}
	if req.Date.Set {
		d := domain.NoDate()
		if !req.Date.Null {
			d = req.Date.Value
		}
		input.Date = &d
	}
	if req.Position.Set && !req.Position.Null {
		p := req.Position.Value
		input.Position = &p
	}
	return input
}

type connectRequest struct {
	TargetID uuid.UUID             `json:"targetEventId"`
	Type     domain.ConnectionType `json:"type"`
	Order    int                   `json:"order"`
}

type disconnectRequest struct {
	TargetID uuid.UUID `json:"targetEventId"`
}

// List handles GET /api/events?projectId=&undated=.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	undated, err := queryBool(r, "undated")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.ListEvents(r.Context(), domain.EventFilter{ProjectID: projectID, Undated: undated})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]eventResponse, len(events))
	for i := range events {
		resp[i] = toEventResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.CreateEvent(r.Context(), event.CreateEventInput{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Position:    req.Position,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

// Get handles GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.UpdateEvent(r.Context(), req.input(id))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), event.DeleteEventInput{EventID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Connect handles POST /api/events/{id}/connect.
func (h *EventHandler) Connect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req connectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Connect(r.Context(), event.ConnectInput{
		SourceID: id,
		TargetID: req.TargetID,
		Type:     req.Type,
		Order:    req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toConnectionResponse(c))
}

// Disconnect handles DELETE /api/events/{id}/connect. The target may be
// given in the body or as ?targetEventId=.
func (h *EventHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	targetID, err := queryID(r, "targetEventId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if targetID == nil {
		var req disconnectRequest
		if err := decodeJSON(r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		targetID = &req.TargetID
	}

	if err := h.svc.Disconnect(r.Context(), event.DisconnectInput{SourceID: id, TargetID: *targetID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
