package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Key material is opaque to the server: the
// public key is stored as supplied, the two protected keys are envelopes
// wrapped client-side.
type User struct {
	ID                    uuid.UUID
	Email                 string
	Username              string
	PasswordHash          string
	PublicKey             string
	ProtectedPrivateKey   string
	ProtectedSymmetricKey string
	Role                  UserRole
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsAdmin reports whether the user carries the staff bypass.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// PublicProfile is what other users may learn about an account: enough to
// address it and to wrap keys for it.
type PublicProfile struct {
	ID        uuid.UUID
	Username  string
	PublicKey string
}

// PublicProfile projects the user onto its publicly visible fields.
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		PublicKey: u.PublicKey,
	}
}
