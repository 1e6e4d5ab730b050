// Package user serves account profiles and the per-user notification inbox.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

type inboxReader interface {
	Inbox(ctx context.Context, recipient string, limit int64) ([]domain.Notification, error)
}

// Service implements profile lookups.
type Service struct {
	log   *slog.Logger
	users userRepo
	inbox inboxReader
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, inbox inboxReader) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		inbox: inbox,
	}
}
