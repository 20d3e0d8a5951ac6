package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/service/project"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/generated"
)

// CreateProject is the resolver for the createProject field.
func (r *mutationResolver) CreateProject(ctx context.Context, input generated.CreateProjectInput) (*domain.Project, error) {
	return r.projects.CreateProject(ctx, project.CreateProjectInput{Name: input.Name})
}

// RenameProject is the resolver for the renameProject field.
func (r *mutationResolver) RenameProject(ctx context.Context, input generated.RenameProjectInput) (*domain.Project, error) {
	return r.projects.UpdateProject(ctx, project.UpdateProjectInput{ProjectID: input.ProjectID, Name: input.Name})
}

// DeleteProject is the resolver for the deleteProject field.
func (r *mutationResolver) DeleteProject(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.projects.DeleteProject(ctx, project.DeleteProjectInput{ProjectID: id}); err != nil {
		return false, err
	}
	return true, nil
}

// Events is the resolver for the events field. Sibling projects share one
// batched query.
func (r *projectResolver) Events(ctx context.Context, obj *domain.Project) ([]domain.Event, error) {
	events, err := dataloader.FromContext(ctx).EventsByProjectID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, fmt.Errorf("load project events: %w", err)
	}
	return events, nil
}

// Projects is the resolver for the projects field.
func (r *queryResolver) Projects(ctx context.Context) ([]domain.Project, error) {
	return r.projects.ListProjects(ctx)
}

// Project is the resolver for the project field.
func (r *queryResolver) Project(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return r.projects.GetProject(ctx, id)
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Project returns generated.ProjectResolver implementation.
func (r *Resolver) Project() generated.ProjectResolver { return &projectResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type projectResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
