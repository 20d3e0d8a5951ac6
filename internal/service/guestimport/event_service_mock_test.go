package guestimport

import (
	"context"
	"sync"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
)

var _ eventService = &eventServiceMock{}

type eventServiceMock struct {
	ConnectFunc     func(ctx context.Context, input event.ConnectInput) (*domain.Connection, error)
	CreateEventFunc func(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)

	calls struct {
		Connect []struct {
			Ctx   context.Context
			Input event.ConnectInput
		}
		CreateEvent []struct {
			Ctx   context.Context
			Input event.CreateEventInput
		}
	}
	lockConnect     sync.RWMutex
	lockCreateEvent sync.RWMutex
}

func (mock *eventServiceMock) Connect(ctx context.Context, input event.ConnectInput) (*domain.Connection, error) {
	if mock.ConnectFunc == nil {
		panic("eventServiceMock.ConnectFunc: method is nil but eventService.Connect was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.ConnectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockConnect.Lock()
	mock.calls.Connect = append(mock.calls.Connect, callInfo)
	mock.lockConnect.Unlock()
	return mock.ConnectFunc(ctx, input)
}

func (mock *eventServiceMock) ConnectCalls() []struct {
	Ctx   context.Context
	Input event.ConnectInput
} {
	mock.lockConnect.RLock()
	calls := mock.calls.Connect
	mock.lockConnect.RUnlock()
	return calls
}

func (mock *eventServiceMock) CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error) {
	if mock.CreateEventFunc == nil {
		panic("eventServiceMock.CreateEventFunc: method is nil but eventService.CreateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.CreateEventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEvent.Lock()
	mock.calls.CreateEvent = append(mock.calls.CreateEvent, callInfo)
	mock.lockCreateEvent.Unlock()
	return mock.CreateEventFunc(ctx, input)
}

func (mock *eventServiceMock) CreateEventCalls() []struct {
	Ctx   context.Context
	Input event.CreateEventInput
} {
	mock.lockCreateEvent.RLock()
	calls := mock.calls.CreateEvent
	mock.lockCreateEvent.RUnlock()
	return calls
}
