package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

// backwardPair returns two events joined by a LINEAR connection pointing to
// an earlier date.
func backwardPair() []domain.Event {
	src, dst := newEvent(dated(2024, 5, 1)), newEvent(dated(2024, 4, 1))
	src.Nexts = []domain.Connection{{
		ID: uuid.New(), SourceID: src.ID, TargetID: dst.ID, Type: domain.ConnectionLinear,
	}}
	return []domain.Event{*src, *dst}
}

func TestAnalyzeTimeline_FlagsBackwardLink(t *testing.T) {
	t.Parallel()

	f := newFixture()
	events := backwardPair()
	f.events.ListFunc = func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
		return events, nil
	}

	report, err := f.svc.AnalyzeTimeline(userCtx(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Inconsistent.Len() != 2 || !report.Inconsistent.Has(events[0].ID) || !report.Inconsistent.Has(events[1].ID) {
		t.Errorf("both endpoints should be flagged: %v", report.Inconsistent.Sorted())
	}
	if len(report.Suggestions) != 1 || report.Suggestions[0].Cause != timeline.CauseBackwardLinearTarget {
		t.Errorf("unexpected suggestions: %+v", report.Suggestions)
	}
	if calls := f.metrics.AnalysisCompletedCalls(); len(calls) != 1 || calls[0].Flagged != 2 {
		t.Errorf("AnalysisCompleted calls: %+v", calls)
	}
	if len(f.projects.GetByIDCalls()) != 0 {
		t.Error("tenant-wide analysis should not look up a project")
	}
}

func TestAnalyzeTimeline_ForeignProject(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.projects.GetByIDFunc = func(ctx context.Context, userID, projectID uuid.UUID) (*domain.Project, error) {
		return nil, domain.ErrNotFound
	}

	projectID := uuid.New()
	_, err := f.svc.AnalyzeTimeline(userCtx(), &projectID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(f.events.ListCalls()) != 0 {
		t.Error("events should not be listed for a foreign project")
	}
}

func TestAnalyzeTimeline_Unauthorized(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.svc.AnalyzeTimeline(context.Background(), nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestTimelineGraph_ScopedToProject(t *testing.T) {
	t.Parallel()

	f := newFixture()
	events := backwardPair()
	f.events.ListFunc = func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
		return events, nil
	}

	projectID := uuid.New()
	g, err := f.svc.TimelineGraph(userCtx(), &projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Len() != 2 {
		t.Errorf("nodes: got %d, want 2", g.Len())
	}
	if succ := g.Successors(events[0].ID); len(succ) != 1 || succ[0] != events[1].ID {
		t.Errorf("successors: got %v", succ)
	}
	if calls := f.events.ListCalls(); *calls[0].Filter.ProjectID != projectID {
		t.Error("listing should be scoped to the project")
	}
}
