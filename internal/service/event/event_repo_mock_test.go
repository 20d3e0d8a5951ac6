package event

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc  func(ctx context.Context, userID uuid.UUID, e domain.Event) (*domain.Event, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*domain.Event, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error)
	ResolveFunc func(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*domain.Event, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			E      domain.Event
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.EventFilter
		}
		Resolve []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EventID uuid.UUID
			Params  domain.EventUpdateParams
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockResolve sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, userID uuid.UUID, e domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		E      domain.Event
	}{
		Ctx:    ctx,
		UserID: userID,
		E:      e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, e)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	E      domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EventID: eventID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EventID: eventID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.EventFilter) ([]domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.EventFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.EventFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *eventRepoMock) Resolve(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*domain.Event, error) {
	if mock.ResolveFunc == nil {
		panic("eventRepoMock.ResolveFunc: method is nil but eventRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EventID: eventID,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, userID, eventID)
}

func (mock *eventRepoMock) ResolveCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EventID uuid.UUID
		Params  domain.EventUpdateParams
	}{
		Ctx:     ctx,
		UserID:  userID,
		EventID: eventID,
		Params:  params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, eventID, params)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EventID uuid.UUID
	Params  domain.EventUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
