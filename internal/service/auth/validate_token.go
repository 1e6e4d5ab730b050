package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// ValidateToken resolves an access token to an active user. The role is
// read from storage rather than the token so a demotion or a lockout takes
// effect on the next request.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}

	if !user.IsActive {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	return user.ID, user.Role.String(), nil
}
