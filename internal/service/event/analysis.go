package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// AnalyzeTimeline runs the consistency analysis over the user's events,
// restricted to one project when projectID is non-nil.
func (s *Service) AnalyzeTimeline(ctx context.Context, projectID *uuid.UUID) (timeline.Report, error) {
	userID, events, err := s.loadScope(ctx, projectID)
	if err != nil {
		return timeline.Report{}, err
	}

	report := timeline.Analyze(events)

	s.metrics.AnalysisCompleted(report.Inconsistent.Len())
	s.log.DebugContext(ctx, "timeline analyzed",
		slog.String("user_id", userID.String()),
		slog.Int("events", len(events)),
		slog.Int("inconsistent", report.Inconsistent.Len()),
	)

	return report, nil
}

// TimelineGraph returns the adjacency structure of the user's events,
// restricted to one project when projectID is non-nil.
func (s *Service) TimelineGraph(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error) {
	_, events, err := s.loadScope(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return timeline.Build(events), nil
}

// loadScope lists the events an analysis runs over. A foreign or missing
// project yields domain.ErrNotFound rather than an empty scope.
func (s *Service) loadScope(ctx context.Context, projectID *uuid.UUID) (uuid.UUID, []domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	if projectID != nil {
		if _, err := s.projects.GetByID(ctx, userID, *projectID); err != nil {
			return uuid.Nil, nil, fmt.Errorf("get project: %w", err)
		}
	}

	events, err := s.events.List(ctx, userID, domain.EventFilter{ProjectID: projectID})
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("list events: %w", err)
	}

	return userID, events, nil
}
