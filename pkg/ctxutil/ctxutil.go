// Package ctxutil carries request-scoped identity and tracing values.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	identityKey  ctxKey = "identity"
)

// Identity is the claims bundle asserted by the identity provider for the
// current caller.
type Identity struct {
	UserID             uuid.UUID
	Email              string
	Role               string
	SubscriptionStatus string
	SubscriptionPlan   string
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
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

// WithIdentity stores the caller's identity and its user ID.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = WithUserID(ctx, id.UserID)
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx returns the caller's identity, if any.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
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

// IsAdminCtx reports whether the caller's identity carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	id, ok := IdentityFromCtx(ctx)
	return ok && id.Role == "admin"
}
