package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// SetUserRole grants or revokes the admin role. Only admins may call it, an
// admin cannot demote themselves, and setting the role a user already has
// is a conflict.
func (s *Service) SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	switch {
	case !role.IsValid():
		return nil, domain.NewValidationError("role", "must be user or admin")
	case callerID == targetID && role != domain.UserRoleAdmin:
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	current, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}
	if current.Role == role {
		return nil, fmt.Errorf("user.SetUserRole: already %s: %w", role, domain.ErrConflict)
	}

	updated, err := s.users.SetRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("admin_id", callerID.String()),
		slog.String("user_id", targetID.String()),
		slog.String("from", current.Role.String()),
		slog.String("to", role.String()),
	)
	return updated, nil
}
