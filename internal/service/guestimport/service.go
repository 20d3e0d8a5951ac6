// Package guestimport merges a guest timeline, kept by an anonymous browser
// session, into one of the authenticated user's projects.
//
// Records are replayed through the ordinary project and event operations
// inside one transaction, so every rule those operations enforce applies.
// Records that cannot be imported are skipped and reported; a storage error
// rolls the whole import back.
package guestimport

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/config"
	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
}

type eventService interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	Connect(ctx context.Context, input event.ConnectInput) (*domain.Connection, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	ImportCompleted(events int, skipped map[string]int)
}

// Service imports guest timelines.
type Service struct {
	log       *slog.Logger
	projects  projectService
	events    eventService
	audit     auditLogger
	tx        txManager
	metrics   metricsRecorder
	maxEvents int
}

// NewService creates a new guest import service.
func NewService(
	logger *slog.Logger,
	projects projectService,
	events eventService,
	audit auditLogger,
	tx txManager,
	metrics metricsRecorder,
	cfg config.TimelineConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "guestimport"),
		projects:  projects,
		events:    events,
		audit:     audit,
		tx:        tx,
		metrics:   metrics,
		maxEvents: cfg.MaxImportEvents,
	}
}

// Input selects the target project and carries the guest document.
// Exactly one of ProjectID and ProjectName must be set.
type Input struct {
	ProjectID   uuid.UUID
	ProjectName string
	Timeline    *Timeline
}

// Validate checks all fields and collects all errors.
func (i Input) Validate(maxEvents int) error {
	var errs []domain.FieldError

	switch {
	case i.ProjectID == uuid.Nil && i.ProjectName == "":
		errs = append(errs, domain.FieldError{Field: "project", Message: "project id or name required"})
	case i.ProjectID != uuid.Nil && i.ProjectName != "":
		errs = append(errs, domain.FieldError{Field: "project", Message: "give either a project id or a name, not both"})
	}

	switch {
	case i.Timeline == nil:
		errs = append(errs, domain.FieldError{Field: "events", Message: "required"})
	case len(i.Timeline.Events) > maxEvents:
		errs = append(errs, domain.FieldError{Field: "events", Message: fmt.Sprintf("max %d events per import", maxEvents)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Result summarizes a finished import.
type Result struct {
	ProjectID          uuid.UUID            `json:"projectId"`
	ProjectCreated     bool                 `json:"projectCreated"`
	EventsCreated      int                  `json:"eventsCreated"`
	ConnectionsCreated int                  `json:"connectionsCreated"`
	IDs                map[string]uuid.UUID `json:"ids"`
	Skipped            []Skip               `json:"skipped"`
}

// Import replays input.Timeline into the selected project.
func (s *Service) Import(ctx context.Context, input Input) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxEvents); err != nil {
		return nil, err
	}

	plan := NewPlan(input.Timeline)
	result := &Result{
		IDs:     make(map[string]uuid.UUID, plan.Events()),
		Skipped: plan.Skipped,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, projectErr := s.targetProject(txCtx, input)
		if projectErr != nil {
			return projectErr
		}
		result.ProjectID = p.ID
		result.ProjectCreated = input.ProjectID == uuid.Nil

		for _, pe := range plan.events {
			in := pe.input
			in.ProjectID = p.ID
			created, createErr := s.events.CreateEvent(txCtx, in)
			if createErr != nil {
				return fmt.Errorf("import event %q: %w", pe.localID, createErr)
			}
			result.IDs[pe.localID] = created.ID
		}

		for _, pl := range plan.links {
			in := pl.input
			in.SourceID = result.IDs[pl.sourceLocalID]
			in.TargetID = result.IDs[pl.targetLocalID]
			if _, connectErr := s.events.Connect(txCtx, in); connectErr != nil {
				return fmt.Errorf("import connection %q -> %q: %w", pl.sourceLocalID, pl.targetLocalID, connectErr)
			}
		}

		result.EventsCreated = plan.Events()
		result.ConnectionsCreated = plan.Connections()

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &p.ID,
			Action:     domain.AuditActionImport,
			Changes: map[string]any{
				"events":      result.EventsCreated,
				"connections": result.ConnectionsCreated,
				"skipped":     len(result.Skipped),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ImportCompleted(result.EventsCreated, plan.SkipCounts())
	s.log.InfoContext(ctx, "guest timeline imported",
		slog.String("user_id", userID.String()),
		slog.String("project_id", result.ProjectID.String()),
		slog.Int("events", result.EventsCreated),
		slog.Int("connections", result.ConnectionsCreated),
		slog.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func (s *Service) targetProject(ctx context.Context, input Input) (*domain.Project, error) {
	if input.ProjectID != uuid.Nil {
		p, err := s.projects.GetProject(ctx, input.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("get project: %w", err)
		}
		return p, nil
	}

	p, err := s.projects.CreateProject(ctx, project.CreateProjectInput{Name: input.ProjectName})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}
