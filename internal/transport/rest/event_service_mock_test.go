package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
)

var _ eventService = &eventServiceMock{}

type eventServiceMock struct {
	CreateEventFunc func(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	GetEventFunc    func(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEventsFunc  func(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	UpdateEventFunc func(ctx context.Context, input event.UpdateEventInput) (*domain.Event, error)
	DeleteEventFunc func(ctx context.Context, input event.DeleteEventInput) error
	ConnectFunc     func(ctx context.Context, input event.ConnectInput) (*domain.Connection, error)
	DisconnectFunc  func(ctx context.Context, input event.DisconnectInput) error

	calls struct {
		CreateEvent []struct {
			Ctx   context.Context
			Input event.CreateEventInput
		}
		GetEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		ListEvents []struct {
			Ctx    context.Context
			Filter domain.EventFilter
		}
		UpdateEvent []struct {
			Ctx   context.Context
			Input event.UpdateEventInput
		}
		DeleteEvent []struct {
			Ctx   context.Context
			Input event.DeleteEventInput
		}
		Connect []struct {
			Ctx   context.Context
			Input event.ConnectInput
		}
		Disconnect []struct {
			Ctx   context.Context
			Input event.DisconnectInput
		}
	}
	lockCreateEvent sync.RWMutex
	lockGetEvent    sync.RWMutex
	lockListEvents  sync.RWMutex
	lockUpdateEvent sync.RWMutex
	lockDeleteEvent sync.RWMutex
	lockConnect     sync.RWMutex
	lockDisconnect  sync.RWMutex
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

func (mock *eventServiceMock) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetEventFunc == nil {
		panic("eventServiceMock.GetEventFunc: method is nil but eventService.GetEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		EventID: eventID,
	}
	mock.lockGetEvent.Lock()
	mock.calls.GetEvent = append(mock.calls.GetEvent, callInfo)
	mock.lockGetEvent.Unlock()
	return mock.GetEventFunc(ctx, eventID)
}

func (mock *eventServiceMock) GetEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockGetEvent.RLock()
	calls := mock.calls.GetEvent
	mock.lockGetEvent.RUnlock()
	return calls
}

func (mock *eventServiceMock) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	if mock.ListEventsFunc == nil {
		panic("eventServiceMock.ListEventsFunc: method is nil but eventService.ListEvents was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EventFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, filter)
}

func (mock *eventServiceMock) ListEventsCalls() []struct {
	Ctx    context.Context
	Filter domain.EventFilter
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *eventServiceMock) UpdateEvent(ctx context.Context, input event.UpdateEventInput) (*domain.Event, error) {
	if mock.UpdateEventFunc == nil {
		panic("eventServiceMock.UpdateEventFunc: method is nil but eventService.UpdateEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.UpdateEventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateEvent.Lock()
	mock.calls.UpdateEvent = append(mock.calls.UpdateEvent, callInfo)
	mock.lockUpdateEvent.Unlock()
	return mock.UpdateEventFunc(ctx, input)
}

func (mock *eventServiceMock) UpdateEventCalls() []struct {
	Ctx   context.Context
	Input event.UpdateEventInput
} {
	mock.lockUpdateEvent.RLock()
	calls := mock.calls.UpdateEvent
	mock.lockUpdateEvent.RUnlock()
	return calls
}

func (mock *eventServiceMock) DeleteEvent(ctx context.Context, input event.DeleteEventInput) error {
	if mock.DeleteEventFunc == nil {
		panic("eventServiceMock.DeleteEventFunc: method is nil but eventService.DeleteEvent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.DeleteEventInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteEvent.Lock()
	mock.calls.DeleteEvent = append(mock.calls.DeleteEvent, callInfo)
	mock.lockDeleteEvent.Unlock()
	return mock.DeleteEventFunc(ctx, input)
}

func (mock *eventServiceMock) DeleteEventCalls() []struct {
	Ctx   context.Context
	Input event.DeleteEventInput
} {
	mock.lockDeleteEvent.RLock()
	calls := mock.calls.DeleteEvent
	mock.lockDeleteEvent.RUnlock()
	return calls
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

func (mock *eventServiceMock) Disconnect(ctx context.Context, input event.DisconnectInput) error {
	if mock.DisconnectFunc == nil {
		panic("eventServiceMock.DisconnectFunc: method is nil but eventService.Disconnect was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input event.DisconnectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDisconnect.Lock()
	mock.calls.Disconnect = append(mock.calls.Disconnect, callInfo)
	mock.lockDisconnect.Unlock()
	return mock.DisconnectFunc(ctx, input)
}

func (mock *eventServiceMock) DisconnectCalls() []struct {
	Ctx   context.Context
	Input event.DisconnectInput
} {
	mock.lockDisconnect.RLock()
	calls := mock.calls.Disconnect
	mock.lockDisconnect.RUnlock()
	return calls
}
