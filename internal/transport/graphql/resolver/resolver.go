package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
)

// projectService defines what resolver needs from Project service.
type projectService interface {
	CreateProject(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, input project.DeleteProjectInput) error
}

// eventService defines what resolver needs from Event service.
type eventService interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, input event.DeleteEventInput) error
	Connect(ctx context.Context, input event.ConnectInput) (*domain.Connection, error)
	Disconnect(ctx context.Context, input event.DisconnectInput) error
}

// timelineService defines the read-only checks over the user's events.
type timelineService interface {
	ValidateProposed(ctx context.Context, input event.ConnectInput) (timeline.Verdict, error)
	AnalyzeTimeline(ctx context.Context, projectID *uuid.UUID) (timeline.Report, error)
	TimelineGraph(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	projects projectService
	events   eventService
	timeline timelineService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	projects projectService,
	events eventService,
	timeline timelineService,
) *Resolver {
	return &Resolver{
		projects: projects,
		events:   events,
		timeline: timeline,
		log:      log.With("component", "graphql"),
	}
}
