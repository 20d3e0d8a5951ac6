package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

func sampleProject() *domain.Project {
	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Project{ID: uuid.New(), Name: "Atlas", EventCount: 3, CreatedAt: ts, UpdatedAt: ts}
}

func TestProjects_List(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	p := sampleProject()
	s.projects.ListProjectsFunc = func(ctx context.Context) ([]domain.Project, error) {
		if id, _ := ctxutil.UserIDFromCtx(ctx); id != s.userID {
			t.Errorf("expected principal %s, got %s", s.userID, id)
		}
		return []domain.Project{*p}, nil
	}

	rec := s.do(http.MethodGet, "/api/projects", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%q,"name":"Atlas","eventCount":3,
		"createdAt":"2026-02-01T10:00:00Z","updatedAt":"2026-02-01T10:00:00Z"}]`, p.ID), rec.Body.String())
}

func TestProjects_ListEmptyIsArray(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.projects.ListProjectsFunc = func(ctx context.Context) ([]domain.Project, error) { return nil, nil }

	rec := s.do(http.MethodGet, "/api/projects", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProjects_Create(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.projects.CreateProjectFunc = func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
		p := sampleProject()
		p.Name = input.Name
		return p, nil
	}

	rec := s.do(http.MethodPost, "/api/projects", `{"name":"Odyssey"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp projectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Odyssey", resp.Name)
}

func TestProjects_CreateValidation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.projects.CreateProjectFunc = func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
		return nil, domain.NewValidationError("name", "required")
	}

	rec := s.do(http.MethodPost, "/api/projects", `{"name":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","fields":[{"field":"name","message":"required"}]}`, rec.Body.String())
}

func TestProjects_CreateMalformedBody(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/projects", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, s.projects.CreateProjectCalls())
}

func TestProjects_GetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", fmt.Errorf("get project: %w", domain.ErrNotFound), http.StatusNotFound, `{"error":"not found"}`},
		{"integrity", domain.ErrIntegrity, http.StatusNotFound, `{"error":"not found"}`},
		{"conflict", domain.ErrConflict, http.StatusConflict, `{"error":"already exists"}`},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestServer(t)
			s.projects.GetProjectFunc = func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
				return nil, tt.err
			}

			rec := s.do(http.MethodGet, "/api/projects/"+uuid.NewString(), "")

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestProjects_GetInvalidID(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/projects/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation error","fields":[{"field":"id","message":"must be a UUID"}]}`, rec.Body.String())
	assert.Empty(t, s.projects.GetProjectCalls())
}

func TestProjects_Update(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	id := uuid.New()
	s.projects.UpdateProjectFunc = func(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error) {
		p := sampleProject()
		p.ID, p.Name = input.ProjectID, input.Name
		return p, nil
	}

	rec := s.do(http.MethodPut, "/api/projects/"+id.String(), `{"name":"Renamed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	calls := s.projects.UpdateProjectCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, project.UpdateProjectInput{ProjectID: id, Name: "Renamed"}, calls[0].Input)
}

func TestProjects_Delete(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	id := uuid.New()
	s.projects.DeleteProjectFunc = func(ctx context.Context, input project.DeleteProjectInput) error { return nil }

	rec := s.do(http.MethodDelete, "/api/projects/"+id.String(), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, s.projects.DeleteProjectCalls()[0].Input.ProjectID)
}

func TestProjects_ImportIntoExisting(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	id := uuid.New()
	s.importer.ImportFunc = func(ctx context.Context, input guestimport.Input) (*guestimport.Result, error) {
		return &guestimport.Result{ProjectID: input.ProjectID, EventsCreated: len(input.Timeline.Events)}, nil
	}

	rec := s.do(http.MethodPost, "/api/projects/"+id.String()+"/import",
		`{"events":[{"id":"a","title":"A"},{"id":"b","title":"B"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	calls := s.importer.ImportCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, id, calls[0].Input.ProjectID)
	assert.Empty(t, calls[0].Input.ProjectName)

	var resp guestimport.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.EventsCreated)
}

func TestProjects_ImportMalformedDocument(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/projects/"+uuid.NewString()+"/import", `{"events":[`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, s.importer.ImportCalls())
}

func TestProjects_ImportNewProject(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.importer.ImportFunc = func(ctx context.Context, input guestimport.Input) (*guestimport.Result, error) {
		return &guestimport.Result{ProjectID: uuid.New(), ProjectCreated: true}, nil
	}

	rec := s.do(http.MethodPost, "/api/projects/import", `{"name":"From guest","timeline":{"events":[]}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	calls := s.importer.ImportCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "From guest", calls[0].Input.ProjectName)
	require.NotNil(t, calls[0].Input.Timeline)
}
