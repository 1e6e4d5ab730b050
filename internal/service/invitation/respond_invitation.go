package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// RespondInvitation records the invitee's answer. An invitation can be
// answered once; a second answer is a conflict.
func (s *Service) RespondInvitation(ctx context.Context, input RespondInvitationInput) (*domain.Invitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.invitations.GetByID(ctx, input.InvitationID)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if current.InvitedUserID != userID {
		return nil, domain.ErrForbidden
	}
	if !current.IsPending() {
		return nil, fmt.Errorf("invitation already %s: %w", current.Status, domain.ErrConflict)
	}

	updated, err := s.invitations.Respond(ctx, input.InvitationID, userID, input.Status)
	if err != nil {
		// Lost the race with a concurrent answer.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invitation already answered: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("respond invitation: %w", err)
	}

	event, err := s.events.GetByID(ctx, updated.EventID)
	if err != nil {
		s.log.WarnContext(ctx, "event vanished after invitation response",
			slog.String("invitation_id", updated.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.notifier.Notify(ctx, domain.Notification{
			Kind:        domain.NotificationInvitationResponded,
			RecipientID: event.CreatorID,
			Subject:     updated.InvitedUsername + " answered your invitation",
			Context: map[string]string{
				"invitation_id": updated.ID.String(),
				"event_id":      event.ID.String(),
				"status":        updated.Status.String(),
			},
		})
	}

	s.log.InfoContext(ctx, "invitation answered",
		slog.String("user_id", userID.String()),
		slog.String("invitation_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
