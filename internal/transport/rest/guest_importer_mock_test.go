package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
)

var _ guestImporter = &guestImporterMock{}

type guestImporterMock struct {
	ImportFunc func(ctx context.Context, input guestimport.Input) (*guestimport.Result, error)

	calls struct {
		Import []struct {
			Ctx   context.Context
			Input guestimport.Input
		}
	}
	lockImport sync.RWMutex
}

func (mock *guestImporterMock) Import(ctx context.Context, input guestimport.Input) (*guestimport.Result, error) {
	if mock.ImportFunc == nil {
		panic("guestImporterMock.ImportFunc: method is nil but guestImporter.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input guestimport.Input
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *guestImporterMock) ImportCalls() []struct {
	Ctx   context.Context
	Input guestimport.Input
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}
