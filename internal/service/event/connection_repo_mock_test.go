package event

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
)

var _ connectionRepo = &connectionRepoMock{}

type connectionRepoMock struct {
	CreateFunc       func(ctx context.Context, c domain.Connection) (*domain.Connection, error)
	DeleteByPairFunc func(ctx context.Context, userID uuid.UUID, sourceID uuid.UUID, targetID uuid.UUID) (*domain.Connection, error)
	ExistsFunc       func(ctx context.Context, sourceID uuid.UUID, targetID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Connection
		}
		DeleteByPair []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			SourceID uuid.UUID
			TargetID uuid.UUID
		}
		Exists []struct {
			Ctx      context.Context
			SourceID uuid.UUID
			TargetID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockDeleteByPair sync.RWMutex
	lockExists       sync.RWMutex
}

func (mock *connectionRepoMock) Create(ctx context.Context, c domain.Connection) (*domain.Connection, error) {
	if mock.CreateFunc == nil {
		panic("connectionRepoMock.CreateFunc: method is nil but connectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Connection
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *connectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Connection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *connectionRepoMock) DeleteByPair(ctx context.Context, userID uuid.UUID, sourceID uuid.UUID, targetID uuid.UUID) (*domain.Connection, error) {
	if mock.DeleteByPairFunc == nil {
		panic("connectionRepoMock.DeleteByPairFunc: method is nil but connectionRepo.DeleteByPair was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		SourceID uuid.UUID
		TargetID uuid.UUID
	}{
		Ctx:      ctx,
		UserID:   userID,
		SourceID: sourceID,
		TargetID: targetID,
	}
	mock.lockDeleteByPair.Lock()
	mock.calls.DeleteByPair = append(mock.calls.DeleteByPair, callInfo)
	mock.lockDeleteByPair.Unlock()
	return mock.DeleteByPairFunc(ctx, userID, sourceID, targetID)
}

func (mock *connectionRepoMock) DeleteByPairCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	SourceID uuid.UUID
	TargetID uuid.UUID
} {
	mock.lockDeleteByPair.RLock()
	calls := mock.calls.DeleteByPair
	mock.lockDeleteByPair.RUnlock()
	return calls
}

func (mock *connectionRepoMock) Exists(ctx context.Context, sourceID uuid.UUID, targetID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("connectionRepoMock.ExistsFunc: method is nil but connectionRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SourceID uuid.UUID
		TargetID uuid.UUID
	}{
		Ctx:      ctx,
		SourceID: sourceID,
		TargetID: targetID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, sourceID, targetID)
}

func (mock *connectionRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	SourceID uuid.UUID
	TargetID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
