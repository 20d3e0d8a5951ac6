package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/ariane-backend/internal/domain"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes, mirroring the REST status mapping.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// Parse and validation failures raised by gqlgen itself carry no
		// domain error and already have a useful message.
		var parsed *gqlerror.Error
		if errors.As(err, &parsed) && parsed.Err == nil {
			return gqlErr
		}

		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			gqlErr.Message = "validation error"
			gqlErr.Extensions = map[string]any{"code": "VALIDATION", "fields": ve.Errors}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}

		// Integrity violations mean an endpoint vanished mid-request.
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrIntegrity):
			gqlErr.Message = "not found"
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(err, domain.ErrConflict):
			gqlErr.Message = "already exists"
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "unauthorized"
			gqlErr.Extensions = map[string]any{"code": "UNAUTHENTICATED"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
