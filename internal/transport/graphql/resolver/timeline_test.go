package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/generated"
)

func TestValidateConnection(t *testing.T) {
	t.Parallel()

	src, tgt := uuid.New(), uuid.New()
	mock := &timelineServiceMock{
		ValidateProposedFunc: func(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error) {
			assert.Equal(t, src, input.SourceID)
			assert.Equal(t, tgt, input.TargetID)
			assert.Equal(t, domain.ConnectionLinear, input.Type)
			return timeline.Verdict{Valid: false, Reason: "target is earlier than source"}, nil
		},
	}

	r := &queryResolver{&Resolver{timeline: mock}}
	verdict, err := r.ValidateConnection(context.Background(), generated.ValidateConnectionInput{
		SourceID: src,
		TargetID: tgt,
		Type:     domain.ConnectionLinear,
	})

	require.NoError(t, err)
	assert.False(t, verdict.Valid)
	assert.NotEmpty(t, verdict.Reason)
}

func TestValidateConnection_ServiceError(t *testing.T) {
	t.Parallel()

	mock := &timelineServiceMock{
		ValidateProposedFunc: func(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error) {
			return timeline.Verdict{}, domain.ErrNotFound
		},
	}

	r := &queryResolver{&Resolver{timeline: mock}}
	_, err := r.ValidateConnection(context.Background(), generated.ValidateConnectionInput{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysis_SortedIDs(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	projectID := uuid.New()
	mock := &timelineServiceMock{
		AnalyzeTimelineFunc: func(ctx context.Context, id *uuid.UUID) (timeline.Report, error) {
			assert.Equal(t, &projectID, id)
			return timeline.Report{
				Inconsistent: timeline.IDSet{a: {}, b: {}},
				Suggestions:  []timeline.Suggestion{{EventID: a, Cause: timeline.CauseUndatedEvent, Message: timeline.MessageUndatedEvent}},
			}, nil
		},
	}

	r := &Resolver{timeline: mock}
	report, err := (&queryResolver{r}).Analysis(context.Background(), &projectID)
	require.NoError(t, err)
	require.Len(t, report.Suggestions, 1)

	ids, err := (&analysisResolver{r}).InconsistentEventIds(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, report.Inconsistent.Sorted(), ids)
	assert.Len(t, ids, 2)
}

func TestAnalysis_ServiceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mock := &timelineServiceMock{
		AnalyzeTimelineFunc: func(ctx context.Context, id *uuid.UUID) (timeline.Report, error) {
			return timeline.Report{}, boom
		},
	}

	_, err := (&queryResolver{&Resolver{timeline: mock}}).Analysis(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestGraph_NodesReachablePath(t *testing.T) {
	t.Parallel()

	a, b, c, lone := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	g := timeline.Build([]domain.Event{
		{ID: a, Title: "a", Nexts: []domain.Connection{{ID: uuid.New(), SourceID: a, TargetID: b}}},
		{ID: b, Title: "b", Nexts: []domain.Connection{{ID: uuid.New(), SourceID: b, TargetID: c}}},
		{ID: c, Title: "c"},
		{ID: lone, Title: "lone"},
	})
	mock := &timelineServiceMock{
		TimelineGraphFunc: func(ctx context.Context, id *uuid.UUID) (*timeline.Graph, error) { return g, nil },
	}
	r := &Resolver{timeline: mock}
	ctx := context.Background()

	got, err := (&queryResolver{r}).Graph(ctx, nil)
	require.NoError(t, err)

	gr := &timelineGraphResolver{r}
	nodes, err := gr.Nodes(ctx, got)
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	assert.Equal(t, a, nodes[0].ID)
	assert.Equal(t, []uuid.UUID{b}, nodes[0].Nexts)
	assert.Equal(t, "a", nodes[0].Event.Title)

	reach, err := gr.Reachable(ctx, got, a)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{b, c}, reach)

	path, err := gr.Path(ctx, got, a, c)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b, c}, path)

	none, err := gr.Path(ctx, got, a, lone)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
