// Package event implements the event store: creator-owned calendar
// entries whose content fields are opaque ciphertext envelopes.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetVisible(ctx context.Context, id, viewerID uuid.UUID, all bool) (*domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListVisibleTo(ctx context.Context, viewerID uuid.UUID, all bool) ([]domain.Event, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Event, error)
}

type screener interface {
	Screen(ctx context.Context, actorID uuid.UUID, operation string, fields ...envelope.Field) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides event operations.
type Service struct {
	events eventRepo
	guard  screener
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new event service.
func NewService(log *slog.Logger, events eventRepo, guard screener, tx txManager) *Service {
	return &Service{
		events: events,
		guard:  guard,
		tx:     tx,
		log:    log.With("service", "event"),
	}
}

// requireCreator fails with domain.ErrForbidden unless actorID owns e.
func (s *Service) requireCreator(ctx context.Context, e *domain.Event, actorID uuid.UUID, op string) error {
	if e.IsCreator(actorID) {
		return nil
	}
	s.log.WarnContext(ctx, "non-creator attempted event mutation",
		slog.String("user_id", actorID.String()),
		slog.String("event_id", e.ID.String()),
		slog.String("operation", op),
	)
	return domain.ErrForbidden
}
