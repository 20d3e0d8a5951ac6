package rest

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
	ListProjectsFunc  func(ctx context.Context) ([]domain.Project, error)
	UpdateProjectFunc func(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProjectFunc func(ctx context.Context, input project.DeleteProjectInput) error

	calls struct {
		CreateProject []struct {
			Ctx   context.Context
			Input project.CreateProjectInput
		}
		GetProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		ListProjects []struct {
			Ctx context.Context
		}
		UpdateProject []struct {
			Ctx   context.Context
			Input project.UpdateProjectInput
		}
		DeleteProject []struct {
			Ctx   context.Context
			Input project.DeleteProjectInput
		}
	}
	lockCreateProject sync.RWMutex
	lockGetProject    sync.RWMutex
	lockListProjects  sync.RWMutex
	lockUpdateProject sync.RWMutex
	lockDeleteProject sync.RWMutex
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

func (mock *projectServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if mock.ListProjectsFunc == nil {
		panic("projectServiceMock.ListProjectsFunc: method is nil but projectService.ListProjects was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListProjects.Lock()
	mock.calls.ListProjects = append(mock.calls.ListProjects, callInfo)
	mock.lockListProjects.Unlock()
	return mock.ListProjectsFunc(ctx)
}

func (mock *projectServiceMock) ListProjectsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListProjects.RLock()
	calls := mock.calls.ListProjects
	mock.lockListProjects.RUnlock()
	return calls
}

func (mock *projectServiceMock) UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error) {
	if mock.UpdateProjectFunc == nil {
		panic("projectServiceMock.UpdateProjectFunc: method is nil but projectService.UpdateProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.UpdateProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProject.Lock()
	mock.calls.UpdateProject = append(mock.calls.UpdateProject, callInfo)
	mock.lockUpdateProject.Unlock()
	return mock.UpdateProjectFunc(ctx, input)
}

func (mock *projectServiceMock) UpdateProjectCalls() []struct {
	Ctx   context.Context
	Input project.UpdateProjectInput
} {
	mock.lockUpdateProject.RLock()
	calls := mock.calls.UpdateProject
	mock.lockUpdateProject.RUnlock()
	return calls
}

func (mock *projectServiceMock) DeleteProject(ctx context.Context, input project.DeleteProjectInput) error {
	if mock.DeleteProjectFunc == nil {
		panic("projectServiceMock.DeleteProjectFunc: method is nil but projectService.DeleteProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.DeleteProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteProject.Lock()
	mock.calls.DeleteProject = append(mock.calls.DeleteProject, callInfo)
	mock.lockDeleteProject.Unlock()
	return mock.DeleteProjectFunc(ctx, input)
}

func (mock *projectServiceMock) DeleteProjectCalls() []struct {
	Ctx   context.Context
	Input project.DeleteProjectInput
} {
	mock.lockDeleteProject.RLock()
	calls := mock.calls.DeleteProject
	mock.lockDeleteProject.RUnlock()
	return calls
}
