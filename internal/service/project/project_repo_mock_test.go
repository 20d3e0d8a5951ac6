package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CountFunc     func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc    func(ctx context.Context, userID uuid.UUID, name string) (*domain.Project, error)
	DeleteFunc    func(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error
	GetByIDFunc   func(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*domain.Project, error)
	ListFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	LockOwnerFunc func(ctx context.Context, userID uuid.UUID) error
	UpdateFunc    func(ctx context.Context, userID uuid.UUID, projectID uuid.UUID, name string) (*domain.Project, error)

	calls struct {
		Count []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
		}
		Delete []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		LockOwner []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
			Name      string
		}
	}
	lockCount     sync.RWMutex
	lockCreate    sync.RWMutex
	lockDelete    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockLockOwner sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *projectRepoMock) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("projectRepoMock.CountFunc: method is nil but projectRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, userID)
}

func (mock *projectRepoMock) CountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *projectRepoMock) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
	}{
		Ctx:    ctx,
		UserID: userID,
		Name:   name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, name)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		ProjectID: projectID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByID(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		ProjectID: projectID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectRepoMock) LockOwner(ctx context.Context, userID uuid.UUID) error {
	if mock.LockOwnerFunc == nil {
		panic("projectRepoMock.LockOwnerFunc: method is nil but projectRepo.LockOwner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockLockOwner.Lock()
	mock.calls.LockOwner = append(mock.calls.LockOwner, callInfo)
	mock.lockLockOwner.Unlock()
	return mock.LockOwnerFunc(ctx, userID)
}

func (mock *projectRepoMock) LockOwnerCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLockOwner.RLock()
	calls := mock.calls.LockOwner
	mock.lockLockOwner.RUnlock()
	return calls
}

func (mock *projectRepoMock) Update(ctx context.Context, userID uuid.UUID, projectID uuid.UUID, name string) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ProjectID uuid.UUID
		Name      string
	}{
		Ctx:       ctx,
		UserID:    userID,
		ProjectID: projectID,
		Name:      name,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, projectID, name)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Name      string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
