package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// errMissingList marks a counterpart list that should exist but does not.
var errMissingList = errors.New("counterpart contact list missing")

// RemoveContact removes the named user from the caller's contacts and the
// caller from theirs. A missing counterpart list is an integrity violation:
// nothing is changed, the administrator is alerted and domain.ErrInternal
// is returned.
func (s *Service) RemoveContact(ctx context.Context, input UsernameInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	target, err := s.resolveCounterpart(ctx, ownerID, input.normalized())
	if err != nil {
		return fmt.Errorf("resolve contact: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		listExists, err := s.contacts.ListExists(txCtx, target.ID)
		if err != nil {
			return fmt.Errorf("check counterpart list: %w", err)
		}

		// Rows go lowest owner id first: two users unfriending each other at
		// once queue on the same row lock instead of deadlocking.
		var ownerRemoved, counterpartRemoved bool
		for _, row := range lockOrder(ownerID, target.ID) {
			removed, err := s.contacts.RemoveMember(txCtx, row.owner, row.contact)
			if err != nil {
				return fmt.Errorf("remove contact row: %w", err)
			}
			if row.owner == ownerID {
				ownerRemoved = removed
			} else {
				counterpartRemoved = removed
			}
		}

		switch {
		case !ownerRemoved:
			return fmt.Errorf("%s is not a contact: %w", target.Username, domain.ErrNotFound)
		case !listExists:
			return errMissingList
		case !counterpartRemoved:
			s.log.WarnContext(txCtx, "asymmetric contact removed",
				slog.String("owner_id", ownerID.String()),
				slog.String("contact_id", target.ID.String()),
			)
		}
		return nil
	})
	if errors.Is(err, errMissingList) {
		s.reportMissingList(ctx, ownerID, target.ID)
		return fmt.Errorf("contact list of %s: %w", target.ID, domain.ErrInternal)
	}
	if err != nil {
		return err
	}

	s.notifyUser(ctx, domain.NotificationContactRemoved, target.ID,
		"A contact removed you from their list",
		map[string]string{"owner_id": ownerID.String()},
	)

	s.log.InfoContext(ctx, "contact removed",
		slog.String("owner_id", ownerID.String()),
		slog.String("contact_id", target.ID.String()),
	)

	return nil
}

func (s *Service) reportMissingList(ctx context.Context, ownerID, targetID uuid.UUID) {
	s.log.ErrorContext(ctx, "contact graph integrity violation",
		slog.String("owner_id", ownerID.String()),
		slog.String("contact_id", targetID.String()),
		slog.String("reason", errMissingList.Error()),
	)

	s.notifier.Notify(ctx, domain.Notification{
		Kind:    domain.NotificationIntegrityAlert,
		Address: s.adminAddress,
		Subject: "Contact graph integrity violation",
		Body:    "User " + ownerID.String() + " lists " + targetID.String() + " as a contact, but " + targetID.String() + " has no contact list.",
		Context: map[string]string{
			"owner_id":   ownerID.String(),
			"contact_id": targetID.String(),
		},
	})
}

type memberRow struct {
	owner, contact uuid.UUID
}

// lockOrder returns the two membership rows of a pair sorted by owner id.
func lockOrder(a, b uuid.UUID) [2]memberRow {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return [2]memberRow{{owner: a, contact: b}, {owner: b, contact: a}}
}

// link adds other to owner's list, creating the list if needed.
func (s *Service) link(ctx context.Context, ownerID, otherID uuid.UUID) error {
	if err := s.contacts.EnsureList(ctx, ownerID); err != nil {
		return fmt.Errorf("ensure contact list: %w", err)
	}
	if err := s.contacts.AddMember(ctx, ownerID, otherID); err != nil {
		return fmt.Errorf("add contact: %w", err)
	}
	return nil
}
