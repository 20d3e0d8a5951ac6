package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, input project.DeleteProjectInput) error
}

type guestImporter interface {
	Import(ctx context.Context, input guestimport.Input) (*guestimport.Result, error)
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc      projectService
	importer guestImporter
	log      *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, importer guestImporter, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, importer: importer, log: logger.With("handler", "project")}
}

type projectRequest struct {
	Name string `json:"name"`
}

type newProjectImportRequest struct {
	Name     string                `json:"name"`
	Timeline *guestimport.Timeline `json:"timeline"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]projectResponse, len(projects))
	for i := range projects {
		resp[i] = toProjectResponse(&projects[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreateProject(r.Context(), project.CreateProjectInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpdateProject(r.Context(), project.UpdateProjectInput{ProjectID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteProject(r.Context(), project.DeleteProjectInput{ProjectID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/projects/{id}/import. The body is the guest
// timeline document.
func (h *ProjectHandler) Import(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tl, err := guestimport.Decode(r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.runImport(w, r, guestimport.Input{ProjectID: id, Timeline: tl})
}

// ImportNew handles POST /api/projects/import, creating the target project
// from the given name.
func (h *ProjectHandler) ImportNew(w http.ResponseWriter, r *http.Request) {
	var req newProjectImportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.runImport(w, r, guestimport.Input{ProjectName: req.Name, Timeline: req.Timeline})
}

func (h *ProjectHandler) runImport(w http.ResponseWriter, r *http.Request, input guestimport.Input) {
	result, err := h.importer.Import(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if result.ProjectCreated {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}
