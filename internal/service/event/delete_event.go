package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// DeleteEvent removes an event and, through the foreign key, its invitations.
func (s *Service) DeleteEvent(ctx context.Context, input EventIDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.events.GetByID(txCtx, input.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if err := s.requireCreator(txCtx, current, userID, "DeleteEvent"); err != nil {
			return err
		}
		if err := s.events.Delete(txCtx, input.EventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", input.EventID.String()),
	)

	return nil
}
