package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/service/event"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
	"github.com/heartmarshall/ariane-backend/internal/transport/graphql/generated"
)

// InconsistentEventIds is the resolver for the inconsistentEventIds field.
func (r *analysisResolver) InconsistentEventIds(ctx context.Context, obj *timeline.Report) ([]uuid.UUID, error) {
	return obj.Inconsistent.Sorted(), nil
}

// ValidateConnection is the resolver for the validateConnection field.
func (r *queryResolver) ValidateConnection(ctx context.Context, input generated.ValidateConnectionInput) (*timeline.Verdict, error) {
	verdict, err := r.timeline.ValidateProposed(ctx, event.ConnectInput{
		SourceID: input.SourceID,
		TargetID: input.TargetID,
		Type:     input.Type,
	})
	if err != nil {
		return nil, err
	}
	return &verdict, nil
}

// Analysis is the resolver for the analysis field.
func (r *queryResolver) Analysis(ctx context.Context, projectID *uuid.UUID) (*timeline.Report, error) {
	report, err := r.timeline.AnalyzeTimeline(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Graph is the resolver for the graph field.
func (r *queryResolver) Graph(ctx context.Context, projectID *uuid.UUID) (*timeline.Graph, error) {
	return r.timeline.TimelineGraph(ctx, projectID)
}

// Cause is the resolver for the cause field.
func (r *suggestionResolver) Cause(ctx context.Context, obj *timeline.Suggestion) (string, error) {
	return string(obj.Cause), nil
}

// Nodes is the resolver for the nodes field.
func (r *timelineGraphResolver) Nodes(ctx context.Context, obj *timeline.Graph) ([]timeline.Node, error) {
	nodes := make([]timeline.Node, 0, obj.Len())
	for _, id := range obj.IDs() {
		if n, ok := obj.Node(id); ok {
			nodes = append(nodes, *n)
		}
	}
	return nodes, nil
}

// Reachable is the resolver for the reachable field.
func (r *timelineGraphResolver) Reachable(ctx context.Context, obj *timeline.Graph, from uuid.UUID) ([]uuid.UUID, error) {
	return obj.Reachable(from).Sorted(), nil
}

// Path is the resolver for the path field.
func (r *timelineGraphResolver) Path(ctx context.Context, obj *timeline.Graph, from uuid.UUID, to uuid.UUID) ([]uuid.UUID, error) {
	path := obj.Path(from, to)
	if path == nil {
		return []uuid.UUID{}, nil
	}
	return path, nil
}

// Analysis returns generated.AnalysisResolver implementation.
func (r *Resolver) Analysis() generated.AnalysisResolver { return &analysisResolver{r} }

// Suggestion returns generated.SuggestionResolver implementation.
func (r *Resolver) Suggestion() generated.SuggestionResolver { return &suggestionResolver{r} }

// TimelineGraph returns generated.TimelineGraphResolver implementation.
func (r *Resolver) TimelineGraph() generated.TimelineGraphResolver { return &timelineGraphResolver{r} }

type analysisResolver struct{ *Resolver }
type suggestionResolver struct{ *Resolver }
type timelineGraphResolver struct{ *Resolver }
