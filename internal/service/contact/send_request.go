package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// SendContactRequest proposes a contact relationship to the named user.
// An existing contact or an active request in either direction is a conflict.
func (s *Service) SendContactRequest(ctx context.Context, input UsernameInput) (*domain.ContactRequest, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.resolveCounterpart(ctx, senderID, input.normalized())
	if err != nil {
		return nil, fmt.Errorf("resolve receiver: %w", err)
	}

	var req *domain.ContactRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		already, err := s.contacts.IsMember(txCtx, senderID, target.ID)
		if err != nil {
			return fmt.Errorf("check contact: %w", err)
		}
		if already {
			return fmt.Errorf("%s is already a contact: %w", target.Username, domain.ErrConflict)
		}

		pending, err := s.contacts.HasActiveBetween(txCtx, senderID, target.ID)
		if err != nil {
			return fmt.Errorf("check pending request: %w", err)
		}
		if pending {
			return fmt.Errorf("request with %s already pending: %w", target.Username, domain.ErrConflict)
		}

		// The partial unique index catches a concurrent duplicate that
		// passed the check above.
		req, err = s.contacts.CreateRequest(txCtx, senderID, target.ID)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("request with %s already pending: %w", target.Username, domain.ErrConflict)
		}
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyUser(ctx, domain.NotificationContactRequested, target.ID,
		req.SenderUsername+" wants to add you as a contact",
		map[string]string{"sender": req.SenderUsername, "request_id": req.ID.String()},
	)

	s.log.InfoContext(ctx, "contact request sent",
		slog.String("sender_id", senderID.String()),
		slog.String("receiver_id", target.ID.String()),
		slog.String("contact_request_id", req.ID.String()),
	)

	return req, nil
}
