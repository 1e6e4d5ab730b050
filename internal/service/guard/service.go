// Package guard locks accounts that submit payloads which do not look like
// ciphertext envelopes. A plaintext submission is treated as a possible
// leak: the request is rejected, the account is deactivated and both the
// administrator and the account owner are told.
package guard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

type userRepo interface {
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service implements the account guard.
type Service struct {
	users        userRepo
	notifier     notifier
	adminAddress string
	log          *slog.Logger
}

// NewService creates a guard. adminAddress receives security alerts.
func NewService(log *slog.Logger, users userRepo, notifier notifier, adminAddress string) *Service {
	return &Service{
		users:        users,
		notifier:     notifier,
		adminAddress: adminAddress,
		log:          log.With("service", "guard"),
	}
}
