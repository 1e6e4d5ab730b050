package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// UpdateEvent applies a partial update. Only the creator may update; the
// supplied fields are screened once ownership is established.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := s.requireCreator(ctx, current, userID, "UpdateEvent"); err != nil {
		return nil, err
	}

	if err := s.guard.Screen(ctx, userID, "UpdateEvent", input.envelopes()...); err != nil {
		return nil, err
	}

	var updated *domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Re-read inside the transaction so a concurrent delete surfaces as NotFound.
		if _, err := s.events.GetByID(txCtx, input.EventID); err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		var err error
		updated, err = s.events.Update(txCtx, input.EventID, input.params())
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event updated",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)

	return updated, nil
}
