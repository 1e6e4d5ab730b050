package guard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// Lock deactivates the account. Locking an already locked account is a no-op.
func (s *Service) Lock(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.SetActive(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("guard.Lock: %w", err)
	}

	s.log.WarnContext(ctx, "account locked", slog.String("user_id", userID.String()))
	return u, nil
}

// Unlock reactivates the account.
func (s *Service) Unlock(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.SetActive(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("guard.Unlock: %w", err)
	}

	s.log.InfoContext(ctx, "account unlocked", slog.String("user_id", userID.String()))
	return u, nil
}

// AdminLock locks targetID on behalf of an administrator.
func (s *Service) AdminLock(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	callerID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if callerID == targetID {
		return nil, domain.NewValidationError("user_id", "cannot lock yourself")
	}

	u, err := s.Lock(ctx, targetID)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, domain.Notification{
		Kind:        domain.NotificationAccountLocked,
		RecipientID: targetID,
		Subject:     "Your account has been locked",
		Body:        "An administrator locked your account.",
	})

	s.log.InfoContext(ctx, "account locked by admin",
		slog.String("admin_id", callerID.String()),
		slog.String("user_id", targetID.String()),
	)
	return u, nil
}

// AdminUnlock reactivates targetID on behalf of an administrator.
func (s *Service) AdminUnlock(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	callerID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.Unlock(ctx, targetID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "account unlocked by admin",
		slog.String("admin_id", callerID.String()),
		slog.String("user_id", targetID.String()),
	)
	return u, nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return callerID, nil
}
