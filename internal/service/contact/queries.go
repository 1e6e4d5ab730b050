package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// IsMutualContact reports whether b is in a's contact set.
func (s *Service) IsMutualContact(ctx context.Context, a, b uuid.UUID) (bool, error) {
	ok, err := s.contacts.IsMember(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("contact.IsMutualContact: %w", err)
	}
	return ok, nil
}

// IsContact reports whether the named user is one of the caller's contacts.
func (s *Service) IsContact(ctx context.Context, input UsernameInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	other, err := s.users.GetByUsername(ctx, input.normalized())
	if err != nil {
		return false, fmt.Errorf("resolve user: %w", err)
	}

	return s.IsMutualContact(ctx, userID, other.ID)
}

// ListContacts returns the caller's confirmed contacts.
func (s *Service) ListContacts(ctx context.Context) ([]domain.PublicProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profiles, err := s.contacts.ListProfiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contact.ListContacts: %w", err)
	}
	return profiles, nil
}

// ListPendingReceived returns active requests addressed to the caller.
func (s *Service) ListPendingReceived(ctx context.Context) ([]domain.ContactRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reqs, err := s.contacts.ListActiveReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contact.ListPendingReceived: %w", err)
	}
	return reqs, nil
}

// ListPendingSent returns the caller's own active requests.
func (s *Service) ListPendingSent(ctx context.Context) ([]domain.ContactRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reqs, err := s.contacts.ListActiveSent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contact.ListPendingSent: %w", err)
	}
	return reqs, nil
}

// AsymmetricContacts returns the members of ownerID's list that do not list
// ownerID back. An empty result means the owner's side of the graph is
// symmetric. It is an operator check and performs no caller authorization.
func (s *Service) AsymmetricContacts(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	list, err := s.contacts.GetList(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("contact.AsymmetricContacts: %w", err)
	}

	var broken []uuid.UUID
	for _, other := range list.Contacts {
		back, err := s.contacts.IsMember(ctx, other, ownerID)
		if err != nil {
			return nil, fmt.Errorf("contact.AsymmetricContacts: %w", err)
		}
		if !back {
			broken = append(broken, other)
		}
	}

	if len(broken) > 0 {
		s.log.WarnContext(ctx, "asymmetric contact list",
			slog.String("owner_id", ownerID.String()),
			slog.Int("asymmetric", len(broken)),
		)
	}
	return broken, nil
}
