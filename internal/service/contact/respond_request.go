package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// AcceptContactRequest accepts the active request sent by the named user.
// Both contact lists are created if needed and updated together with the
// request in one transaction.
func (s *Service) AcceptContactRequest(ctx context.Context, input UsernameInput) (*domain.ContactRequest, error) {
	receiverID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sender, err := s.resolveCounterpart(ctx, receiverID, input.normalized())
	if err != nil {
		return nil, fmt.Errorf("resolve sender: %w", err)
	}

	var req *domain.ContactRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Flipping the request first takes the row lock, so a concurrent
		// accept waits here and then finds nothing to resolve.
		var err error
		req, err = s.contacts.ResolveActive(txCtx, sender.ID, receiverID, domain.RequestOutcomeAccepted)
		if err != nil {
			return fmt.Errorf("resolve request: %w", err)
		}

		if err := s.link(txCtx, receiverID, sender.ID); err != nil {
			return err
		}
		if err := s.link(txCtx, sender.ID, receiverID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyUser(ctx, domain.NotificationContactAccepted, sender.ID,
		req.ReceiverUsername+" is now in your contact list",
		map[string]string{"contact": req.ReceiverUsername},
	)
	s.notifyUser(ctx, domain.NotificationContactAccepted, receiverID,
		req.SenderUsername+" is now in your contact list",
		map[string]string{"contact": req.SenderUsername},
	)

	s.log.InfoContext(ctx, "contact request accepted",
		slog.String("sender_id", sender.ID.String()),
		slog.String("receiver_id", receiverID.String()),
		slog.String("contact_request_id", req.ID.String()),
	)

	return req, nil
}

// DeclineContactRequest declines the active request sent by the named user.
func (s *Service) DeclineContactRequest(ctx context.Context, input UsernameInput) (*domain.ContactRequest, error) {
	receiverID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sender, err := s.resolveCounterpart(ctx, receiverID, input.normalized())
	if err != nil {
		return nil, fmt.Errorf("resolve sender: %w", err)
	}

	req, err := s.contacts.ResolveActive(ctx, sender.ID, receiverID, domain.RequestOutcomeDeclined)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}

	s.notifyUser(ctx, domain.NotificationContactDeclined, sender.ID,
		req.ReceiverUsername+" declined your contact request",
		map[string]string{"receiver": req.ReceiverUsername},
	)

	s.log.InfoContext(ctx, "contact request declined",
		slog.String("sender_id", sender.ID.String()),
		slog.String("receiver_id", receiverID.String()),
	)

	return req, nil
}

// CancelContactRequest withdraws the caller's active request to the named user.
func (s *Service) CancelContactRequest(ctx context.Context, input UsernameInput) (*domain.ContactRequest, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	receiver, err := s.resolveCounterpart(ctx, senderID, input.normalized())
	if err != nil {
		return nil, fmt.Errorf("resolve receiver: %w", err)
	}

	req, err := s.contacts.ResolveActive(ctx, senderID, receiver.ID, domain.RequestOutcomeCancelled)
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}

	s.notifyUser(ctx, domain.NotificationContactCancelled, receiver.ID,
		req.SenderUsername+" withdrew their contact request",
		map[string]string{"sender": req.SenderUsername},
	)

	s.log.InfoContext(ctx, "contact request cancelled",
		slog.String("sender_id", senderID.String()),
		slog.String("receiver_id", receiver.ID.String()),
	)

	return req, nil
}
