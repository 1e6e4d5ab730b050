package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what happened.
type NotificationKind string

const (
	NotificationContactRequested NotificationKind = "contact.requested"
	NotificationContactAccepted  NotificationKind = "contact.accepted"
	NotificationContactDeclined  NotificationKind = "contact.declined"
	NotificationContactCancelled NotificationKind = "contact.cancelled"
	NotificationContactRemoved   NotificationKind = "contact.removed"

	NotificationInvitationCreated   NotificationKind = "invitation.created"
	NotificationInvitationResponded NotificationKind = "invitation.responded"

	NotificationAccountLocked  NotificationKind = "account.locked"
	NotificationSecurityAlert  NotificationKind = "security.alert"
	NotificationIntegrityAlert NotificationKind = "integrity.alert"
)

func (k NotificationKind) String() string { return string(k) }

// Notification is handed to the notifier after the transaction commits.
// Exactly one of RecipientID or Address is set: users are addressed by id,
// the administrator by the configured alert address.
type Notification struct {
	Kind        NotificationKind
	RecipientID uuid.UUID
	Address     string
	Subject     string
	Body        string
	RequestID   string
	Context     map[string]string
	CreatedAt   time.Time
}

// Recipient returns a stable string key for routing the notification.
func (n Notification) Recipient() string {
	if n.Address != "" {
		return n.Address
	}
	return n.RecipientID.String()
}
