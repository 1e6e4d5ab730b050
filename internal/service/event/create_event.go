package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// CreateEvent stores a new event owned by the caller. Every field is
// screened before anything is written; one plaintext field rejects the
// whole request and locks the caller.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.guard.Screen(ctx, userID, "CreateEvent", input.envelopes()...); err != nil {
		return nil, err
	}

	created, err := s.events.Create(ctx, &domain.Event{
		CreatorID:         userID,
		ProtectedEventKey: input.ProtectedEventKey,
		Title:             input.Title,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Description:       input.Description,
		Location:          input.Location,
		Participants:      input.Participants,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", created.ID.String()),
	)

	return created, nil
}
