package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

var _ timelineService = &timelineServiceMock{}

type timelineServiceMock struct {
	AnalyzeTimelineFunc  func(ctx context.Context, projectID *uuid.UUID) (timeline.Report, error)
	TimelineGraphFunc    func(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error)
	ValidateProposedFunc func(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error)

	calls struct {
		AnalyzeTimeline []struct {
			Ctx       context.Context
			ProjectID *uuid.UUID
		}
		TimelineGraph []struct {
			Ctx       context.Context
			ProjectID *uuid.UUID
		}
		ValidateProposed []struct {
			Ctx   context.Context
			Input event.ConnectInput
		}
	}
	lockAnalyzeTimeline  sync.RWMutex
	lockTimelineGraph    sync.RWMutex
	lockValidateProposed sync.RWMutex
}

func (mock *timelineServiceMock) AnalyzeTimeline(ctx context.Context, projectID *uuid.UUID) (timeline.Report, error) {
	if mock.AnalyzeTimelineFunc == nil {
		panic("timelineServiceMock.AnalyzeTimelineFunc: method is nil but timelineService.AnalyzeTimeline was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID *uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockAnalyzeTimeline.Lock()
	mock.calls.AnalyzeTimeline = append(mock.calls.AnalyzeTimeline, callInfo)
	mock.lockAnalyzeTimeline.Unlock()
	return mock.AnalyzeTimelineFunc(ctx, projectID)
}

func (mock *timelineServiceMock) AnalyzeTimelineCalls() []struct {
	Ctx       context.Context
	ProjectID *uuid.UUID
} {
	mock.lockAnalyzeTimeline.RLock()
	calls := mock.calls.AnalyzeTimeline
	mock.lockAnalyzeTimeline.RUnlock()
	return calls
}

func (mock *timelineServiceMock) TimelineGraph(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error) {
	if mock.TimelineGraphFunc == nil {
		panic("timelineServiceMock.TimelineGraphFunc: method is nil but timelineService.TimelineGraph was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID *uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockTimelineGraph.Lock()
	mock.calls.TimelineGraph = append(mock.calls.TimelineGraph, callInfo)
	mock.lockTimelineGraph.Unlock()
	return mock.TimelineGraphFunc(ctx, projectID)
}

func (mock *timelineServiceMock) TimelineGraphCalls() []struct {
	Ctx       context.Context
	ProjectID *uuid.UUID
} {
	mock.lockTimelineGraph.RLock()
	calls := mock.calls.TimelineGraph
	mock.lockTimelineGraph.RUnlock()
	return calls
}

func (mock *timelineServiceMock) ValidateProposed(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error) {
	if mock.ValidateProposedFunc == nil {
		panic("timelineServiceMock.ValidateProposedFunc: method is nil but timelineService.ValidateProposed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.ConnectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockValidateProposed.Lock()
	mock.calls.ValidateProposed = append(mock.calls.ValidateProposed, callInfo)
	mock.lockValidateProposed.Unlock()
	return mock.ValidateProposedFunc(ctx, input)
}

func (mock *timelineServiceMock) ValidateProposedCalls() []struct {
	Ctx   context.Context
	Input event.ConnectInput
} {
	mock.lockValidateProposed.RLock()
	calls := mock.calls.ValidateProposed
	mock.lockValidateProposed.RUnlock()
	return calls
}
