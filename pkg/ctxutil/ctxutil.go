// Package ctxutil carries the caller's identity and the request id through
// a context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	userRoleKey  struct{}
	requestIDKey struct{}
)

// roleAdmin mirrors domain.UserRoleAdmin; pkg/ must not import internal/.
const roleAdmin = "admin"

// WithUserID marks ctx as authenticated as id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. A missing or nil id reports
// false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithUserRole records the caller's role.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

// UserRoleFromCtx returns the caller's role, or "".
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey{}).(string)
	return role
}

// IsAdminCtx reports whether the caller is an administrator. Admins bypass
// ownership checks.
func IsAdminCtx(ctx context.Context) bool {
	return UserRoleFromCtx(ctx) == roleAdmin
}

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
