package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invitation grants one invitee access to one event by carrying the event
// key re-wrapped under the invitee's public key. ProtectedEventID lets the
// invitee locate the event client-side; EventID is the server-side link
// used for cascades and visibility.
type Invitation struct {
	ID                uuid.UUID
	EventID           uuid.UUID
	InvitedUserID     uuid.UUID
	InvitedUsername   string
	ProtectedEventID  string
	ProtectedEventKey string
	Status            InvitationStatus
	CreatedAt         time.Time
	RespondedAt       *time.Time
}

// IsPending reports whether the invitee has not answered yet.
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}
