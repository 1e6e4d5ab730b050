package invitation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// ListMyInvitations returns every invitation held by the caller.
func (s *Service) ListMyInvitations(ctx context.Context) ([]domain.Invitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	invs, err := s.invitations.ListByInvitee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("invitation.ListMyInvitations: %w", err)
	}
	return invs, nil
}

// ListEventInvitations returns the grants of an event. Only its creator
// may see them.
func (s *Service) ListEventInvitations(ctx context.Context, input EventIDInput) ([]domain.Invitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.IsCreator(userID) {
		return nil, domain.ErrForbidden
	}

	invs, err := s.invitations.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("invitation.ListEventInvitations: %w", err)
	}
	return invs, nil
}
