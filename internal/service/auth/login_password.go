package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// LoginWithPassword exchanges email and password for an access token. An
// unknown email, a wrong password and a locked account are indistinguishable
// to the caller: all three return ErrUnauthorized after one bcrypt compare.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Burn the same bcrypt time as a real account.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(input.Password))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		s.log.WarnContext(ctx, "login refused for locked account", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}
	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
