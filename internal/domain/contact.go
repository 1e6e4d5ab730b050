package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ContactList is the owner's set of confirmed contacts. The engine keeps it
// symmetric with every counterpart list.
type ContactList struct {
	OwnerID  uuid.UUID
	Contacts []uuid.UUID
}

// Contains reports whether id is in the contact set.
func (l *ContactList) Contains(id uuid.UUID) bool {
	return slices.Contains(l.Contacts, id)
}

// ContactRequest is a directed friendship proposal. At most one active
// request exists per ordered (sender, receiver) pair.
type ContactRequest struct {
	ID               uuid.UUID
	SenderID         uuid.UUID
	SenderUsername   string
	ReceiverID       uuid.UUID
	ReceiverUsername string
	IsActive         bool
	Outcome          RequestOutcome
	CreatedAt        time.Time
	ResolvedAt       *time.Time
}
