package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	infoKey      ctxKey = "request_info"
)

// WithUserID stores the user ID in the context. The ID is also recorded in
// the request info, if present.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if info, ok := ctx.Value(infoKey).(*requestInfo); ok {
		info.userID = id
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type requestInfo struct {
	route  string
	userID uuid.UUID
}

// WithRequestInfo reserves a mutable record that inner handlers fill while
// serving the request, so outer middleware can read the matched route and
// principal after the handler returns. A context that already carries one
// is returned unchanged.
func WithRequestInfo(ctx context.Context) context.Context {
	if _, ok := ctx.Value(infoKey).(*requestInfo); ok {
		return ctx
	}
	return context.WithValue(ctx, infoKey, &requestInfo{})
}

// SetRoute records the matched route pattern. It is a no-op without request info.
func SetRoute(ctx context.Context, pattern string) {
	if info, ok := ctx.Value(infoKey).(*requestInfo); ok {
		info.route = pattern
	}
}

// RouteFromCtx returns the recorded route pattern, or "" when none matched.
func RouteFromCtx(ctx context.Context) string {
	if info, ok := ctx.Value(infoKey).(*requestInfo); ok {
		return info.route
	}
	return ""
}

// RecordedUserID returns the principal an inner handler stored with
// WithUserID. Same contract as UserIDFromCtx.
func RecordedUserID(ctx context.Context) (uuid.UUID, bool) {
	info, ok := ctx.Value(infoKey).(*requestInfo)
	if !ok || info.userID == uuid.Nil {
		return uuid.Nil, false
	}
	return info.userID, true
}
