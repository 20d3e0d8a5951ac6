package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/internal/timeline"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// Connect creates a directed connection between two of the authenticated
// user's events. A LINEAR connection to an earlier date is rejected with a
// validation error on "type"; a second connection between the same pair is
// rejected with domain.ErrConflict.
func (s *Service) Connect(ctx context.Context, input ConnectInput) (*domain.Connection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ct := input.connectionType()

	var (
		created  *domain.Connection
		rejected bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		source, target, resolveErr := s.resolvePair(txCtx, userID, input.SourceID, input.TargetID)
		if resolveErr != nil {
			return resolveErr
		}

		if verdict := timeline.ValidateEvents(source, target, ct); !verdict.Valid {
			rejected = true
			return domain.NewValidationError("type", verdict.Reason)
		}

		exists, existsErr := s.connections.Exists(txCtx, source.ID, target.ID)
		if existsErr != nil {
			return fmt.Errorf("check connection: %w", existsErr)
		}
		if exists {
			return fmt.Errorf("connection %s -> %s: %w", source.ID, target.ID, domain.ErrConflict)
		}

		var createErr error
		created, createErr = s.connections.Create(txCtx, domain.Connection{
			SourceID: source.ID,
			TargetID: target.ID,
			Type:     ct,
			Order:    input.Order,
		})
		if createErr != nil {
			return fmt.Errorf("create connection: %w", createErr)
		}

		if touchErr := s.projects.Touch(txCtx, source.ProjectID); touchErr != nil {
			return fmt.Errorf("touch project: %w", touchErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeConnection,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"source_id": source.ID.String(),
				"target_id": target.ID.String(),
				"type":      ct.String(),
				"order":     created.Order,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if rejected {
		s.metrics.ConnectionRejected()
	}
	if err != nil {
		return nil, err
	}

	s.metrics.ConnectionCreated(ct)
	s.log.InfoContext(ctx, "events connected",
		slog.String("user_id", userID.String()),
		slog.String("source_id", created.SourceID.String()),
		slog.String("target_id", created.TargetID.String()),
		slog.String("type", ct.String()),
	)

	return created, nil
}

// Disconnect removes the connection from SourceID to TargetID.
// Returns domain.ErrNotFound when the source is not owned by the user or no
// such connection exists.
func (s *Service) Disconnect(ctx context.Context, input DisconnectInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		source, getErr := s.events.Resolve(txCtx, userID, input.SourceID)
		if getErr != nil {
			return fmt.Errorf("get source event: %w", getErr)
		}

		deleted, deleteErr := s.connections.DeleteByPair(txCtx, userID, input.SourceID, input.TargetID)
		if deleteErr != nil {
			return fmt.Errorf("delete connection: %w", deleteErr)
		}

		if touchErr := s.projects.Touch(txCtx, source.ProjectID); touchErr != nil {
			return fmt.Errorf("touch project: %w", touchErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeConnection,
			EntityID:   &deleted.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"source_id": deleted.SourceID.String(),
				"target_id": deleted.TargetID.String(),
				"type":      deleted.Type.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "events disconnected",
		slog.String("user_id", userID.String()),
		slog.String("source_id", input.SourceID.String()),
		slog.String("target_id", input.TargetID.String()),
	)

	return nil
}

// ValidateProposed reports whether Connect would accept a connection of the
// given type between two of the user's events, without writing anything.
// Duplicates are not checked.
func (s *Service) ValidateProposed(ctx context.Context, input ConnectInput) (timeline.Verdict, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return timeline.Verdict{}, domain.ErrUnauthorized
	}

	if errs := endpointErrors(input.SourceID, input.TargetID); len(errs) > 0 {
		return timeline.Verdict{}, domain.NewValidationErrors(errs)
	}

	source, target, err := s.resolvePair(ctx, userID, input.SourceID, input.TargetID)
	if err != nil {
		return timeline.Verdict{}, err
	}

	// Unknown types are reported in the verdict rather than as an error.
	return timeline.ValidateEvents(source, target, input.connectionType()), nil
}

// resolvePair runs the ownership guard on both endpoints.
func (s *Service) resolvePair(ctx context.Context, userID, sourceID, targetID uuid.UUID) (*domain.Event, *domain.Event, error) {
	source, err := s.events.Resolve(ctx, userID, sourceID)
	if err != nil {
		return nil, nil, fmt.Errorf("get source event: %w", err)
	}

	if targetID == sourceID {
		return source, source, nil
	}

	target, err := s.events.Resolve(ctx, userID, targetID)
	if err != nil {
		return nil, nil, fmt.Errorf("get target event: %w", err)
	}

	return source, target, nil
}
