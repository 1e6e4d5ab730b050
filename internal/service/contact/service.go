// Package contact implements the mutual-contact graph and the
// contact-request lifecycle.
package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type contactRepo interface {
	EnsureList(ctx context.Context, ownerID uuid.UUID) error
	ListExists(ctx context.Context, ownerID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, ownerID, contactID uuid.UUID) error
	RemoveMember(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error)
	IsMember(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error)
	ListProfiles(ctx context.Context, ownerID uuid.UUID) ([]domain.PublicProfile, error)
	GetList(ctx context.Context, ownerID uuid.UUID) (*domain.ContactList, error)

	CreateRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.ContactRequest, error)
	HasActiveBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
	ResolveActive(ctx context.Context, senderID, receiverID uuid.UUID, outcome domain.RequestOutcome) (*domain.ContactRequest, error)
	ListActiveReceived(ctx context.Context, receiverID uuid.UUID) ([]domain.ContactRequest, error)
	ListActiveSent(ctx context.Context, senderID uuid.UUID) ([]domain.ContactRequest, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides contact graph operations.
type Service struct {
	users        userRepo
	contacts     contactRepo
	notifier     notifier
	tx           txManager
	adminAddress string
	log          *slog.Logger
}

// NewService creates a new contact service. adminAddress receives
// integrity alerts.
func NewService(
	log *slog.Logger,
	users userRepo,
	contacts contactRepo,
	notifier notifier,
	tx txManager,
	adminAddress string,
) *Service {
	return &Service{
		users:        users,
		contacts:     contacts,
		notifier:     notifier,
		tx:           tx,
		adminAddress: adminAddress,
		log:          log.With("service", "contact"),
	}
}

// resolveCounterpart looks up the other party by username and rejects the caller themselves.
func (s *Service) resolveCounterpart(ctx context.Context, callerID uuid.UUID, username string) (*domain.User, error) {
	target, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if target.ID == callerID {
		return nil, domain.NewValidationError("username", "cannot target yourself")
	}
	return target, nil
}

func (s *Service) notifyUser(ctx context.Context, kind domain.NotificationKind, to uuid.UUID, subject string, kv map[string]string) {
	s.notifier.Notify(ctx, domain.Notification{
		Kind:        kind,
		RecipientID: to,
		Subject:     subject,
		Context:     kv,
	})
}
