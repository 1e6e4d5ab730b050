package event

import (
	"context"
	"fmt"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// GetEvent returns an event the caller may see: their own, one they hold a
// live invitation to, or any event for staff. Anything else is NotFound.
func (s *Service) GetEvent(ctx context.Context, input EventIDInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.events.GetVisible(ctx, input.EventID, userID, ctxutil.IsAdminCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListEventsVisibleTo returns every event the caller may see.
func (s *Service) ListEventsVisibleTo(ctx context.Context) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListVisibleTo(ctx, userID, ctxutil.IsAdminCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("list visible events: %w", err)
	}
	return events, nil
}

// ListMyEvents returns the events the caller created.
func (s *Service) ListMyEvents(ctx context.Context) ([]domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	events, err := s.events.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list my events: %w", err)
	}
	return events, nil
}
