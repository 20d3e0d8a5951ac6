package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

type timelineService interface {
	ValidateProposed(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error)
	AnalyzeTimeline(ctx context.Context, projectID *uuid.UUID) (timeline.Report, error)
	TimelineGraph(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error)
}

// TimelineHandler serves the read-only timeline checks.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type validateRequest struct {
	SourceID uuid.UUID `json:"sourceEventId"`
	TargetID uuid.UUID `json:"targetEventId"`
	// Type is kept as a string so an unknown value reaches the verdict
	// instead of failing decoding.
	Type string `json:"type"`
}

// Validate handles POST /api/timeline/validate.
func (h *TimelineHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	verdict, err := h.svc.ValidateProposed(r.Context(), event.ConnectInput{
		SourceID: req.SourceID,
		TargetID: req.TargetID,
		Type:     domain.ConnectionType(req.Type),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, verdict)
}

// Analysis handles GET /api/timeline/analysis?projectId=.
func (h *TimelineHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.AnalyzeTimeline(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Graph handles GET /api/timeline/graph?projectId=.
func (h *TimelineHandler) Graph(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.TimelineGraph(r.Context(), projectID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGraphResponse(g))
}
