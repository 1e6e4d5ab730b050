// Package invitation grants contacts access to events by storing the event
// key re-wrapped for each invitee.
package invitation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	SetParticipants(ctx context.Context, id uuid.UUID, participants string) error
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type contactRepo interface {
	EnsureList(ctx context.Context, ownerID uuid.UUID) error
	LockMembership(ctx context.Context, ownerID, contactID uuid.UUID) (bool, error)
}

type invitationRepo interface {
	Create(ctx context.Context, inv *domain.Invitation) (*domain.Invitation, error)
	Exists(ctx context.Context, protectedEventID string, eventID, inviteeID uuid.UUID) (bool, error)
	Respond(ctx context.Context, id, inviteeID uuid.UUID, status domain.InvitationStatus) (*domain.Invitation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invitation, error)
	ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]domain.Invitation, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Invitation, error)
}

type screener interface {
	Screen(ctx context.Context, actorID uuid.UUID, operation string, fields ...envelope.Field) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides invitation operations.
type Service struct {
	events      eventRepo
	users       userRepo
	contacts    contactRepo
	invitations invitationRepo
	guard       screener
	notifier    notifier
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new invitation service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	users userRepo,
	contacts contactRepo,
	invitations invitationRepo,
	guard screener,
	notifier notifier,
	tx txManager,
) *Service {
	return &Service{
		events:      events,
		users:       users,
		contacts:    contacts,
		invitations: invitations,
		guard:       guard,
		notifier:    notifier,
		tx:          tx,
		log:         log.With("service", "invitation"),
	}
}
