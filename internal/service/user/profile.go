package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// GetMe returns the caller's own account, wrapped key material included.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return user, nil
}

// GetPublicProfile returns what any signed-in user may learn about another:
// id, username and the public key needed to wrap an event key for them.
func (s *Service) GetPublicProfile(ctx context.Context, input UsernameInput) (*domain.PublicProfile, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return nil, fmt.Errorf("user.GetPublicProfile: %w", err)
	}

	profile := user.PublicProfile()
	return &profile, nil
}

// ListNotifications returns the caller's most recent notifications, newest
// first.
func (s *Service) ListNotifications(ctx context.Context, input ListNotificationsInput) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.inbox.Inbox(ctx, userID.String(), input.limit())
	if err != nil {
		return nil, fmt.Errorf("user.ListNotifications: %w", err)
	}

	return items, nil
}
