package event

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*domain.Project, error)
	GetForUpdateFunc func(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*domain.Project, error)
	TouchFunc        func(ctx context.Context, projectID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		GetForUpdate []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ProjectID uuid.UUID
		}
		Touch []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockTouch        sync.RWMutex
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

func (mock *projectRepoMock) GetForUpdate(ctx context.Context, userID uuid.UUID, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetForUpdateFunc == nil {
		panic("projectRepoMock.GetForUpdateFunc: method is nil but projectRepo.GetForUpdate was just called")
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
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, userID, projectID)
}

func (mock *projectRepoMock) GetForUpdateCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ProjectID uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Touch(ctx context.Context, projectID uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("projectRepoMock.TouchFunc: method is nil but projectRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, projectID)
}

func (mock *projectRepoMock) TouchCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}
