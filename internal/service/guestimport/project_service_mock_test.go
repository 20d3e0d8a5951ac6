package guestimport

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
)

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	CreateProjectFunc func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProjectFunc    func(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)

	calls struct {
		CreateProject []struct {
			Ctx   context.Context
			Input project.CreateProjectInput
		}
		GetProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockCreateProject sync.RWMutex
	lockGetProject    sync.RWMutex
}

func (mock *projectServiceMock) CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
	if mock.CreateProjectFunc == nil {
		panic("projectServiceMock.CreateProjectFunc: method is nil but projectService.CreateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.CreateProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateProject.Lock()
	mock.calls.CreateProject = append(mock.calls.CreateProject, callInfo)
	mock.lockCreateProject.Unlock()
	return mock.CreateProjectFunc(ctx, input)
}

func (mock *projectServiceMock) CreateProjectCalls() []struct {
	Ctx   context.Context
	Input project.CreateProjectInput
} {
	mock.lockCreateProject.RLock()
	calls := mock.calls.CreateProject
	mock.lockCreateProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if mock.GetProjectFunc == nil {
		panic("projectServiceMock.GetProjectFunc: method is nil but projectService.GetProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{
		Ctx:       ctx,
		ProjectID: projectID,
	}
	mock.lockGetProject.Lock()
	mock.calls.GetProject = append(mock.calls.GetProject, callInfo)
	mock.lockGetProject.Unlock()
	return mock.GetProjectFunc(ctx, projectID)
}

func (mock *projectServiceMock) GetProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockGetProject.RLock()
	calls := mock.calls.GetProject
	mock.lockGetProject.RUnlock()
	return calls
}
