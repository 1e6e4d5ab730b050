package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// CreateInvitation grants the named contact access to an event the caller
// created. Envelopes are screened before anything is looked up, so a
// plaintext submission locks the account without revealing whether the
// event or the invitee exist.
func (s *Service) CreateInvitation(ctx context.Context, input CreateInvitationInput) (*domain.Invitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.guard.Screen(ctx, userID, "CreateInvitation", input.envelopes()...); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.IsCreator(userID) {
		s.log.WarnContext(ctx, "non-creator attempted to invite",
			slog.String("user_id", userID.String()),
			slog.String("event_id", event.ID.String()),
		)
		return nil, domain.ErrForbidden
	}

	invitee, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.InviteeUsername))
	if err != nil {
		return nil, fmt.Errorf("resolve invitee: %w", err)
	}

	var created *domain.Invitation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.contacts.EnsureList(txCtx, userID); err != nil {
			return fmt.Errorf("ensure contact list: %w", err)
		}

		// The share lock holds the contact gate until commit: a concurrent
		// unfriend either finishes first or waits for this grant.
		isContact, err := s.contacts.LockMembership(txCtx, userID, invitee.ID)
		if err != nil {
			return fmt.Errorf("check contact: %w", err)
		}
		if !isContact {
			return fmt.Errorf("%s is not a contact: %w", invitee.Username, domain.ErrPermissionDenied)
		}

		exists, err := s.invitations.Exists(txCtx, input.ProtectedEventID, event.ID, invitee.ID)
		if err != nil {
			return fmt.Errorf("check invitation: %w", err)
		}
		if exists {
			return fmt.Errorf("invitation already granted: %w", domain.ErrConflict)
		}

		// The unique constraints decide when two grants race past Exists.
		created, err = s.invitations.Create(txCtx, &domain.Invitation{
			EventID:           event.ID,
			InvitedUserID:     invitee.ID,
			ProtectedEventID:  input.ProtectedEventID,
			ProtectedEventKey: input.ProtectedEventKey,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("invitation already granted: %w", domain.ErrConflict)
			}
			return fmt.Errorf("create invitation: %w", err)
		}

		if err := s.events.SetParticipants(txCtx, event.ID, input.Participants); err != nil {
			return fmt.Errorf("set participants: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, domain.Notification{
		Kind:        domain.NotificationInvitationCreated,
		RecipientID: invitee.ID,
		Subject:     event.CreatorUsername + " invited you to an event",
		Context: map[string]string{
			"invitation_id": created.ID.String(),
			"event_id":      event.ID.String(),
		},
	})

	s.log.InfoContext(ctx, "invitation created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", event.ID.String()),
		slog.String("invitee_id", invitee.ID.String()),
		slog.String("invitation_id", created.ID.String()),
	)

	return created, nil
}
