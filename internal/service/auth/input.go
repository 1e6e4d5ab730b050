package auth

import (
	"net/mail"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordLen = 72

// RegisterInput holds a new account. PublicKey is stored as supplied; the
// two protected keys must be envelopes.
type RegisterInput struct {
	Email                 string
	Username              string
	Password              string
	PublicKey             string
	ProtectedPrivateKey   string
	ProtectedSymmetricKey string
}

// Validate checks all fields and collects all errors. Malformed key
// envelopes are rejected here without any lockout: there is no account yet.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.PublicKey == "" {
		errs = append(errs, domain.FieldError{Field: "public_key", Message: "required"})
	}

	errs = append(errs, envelope.Violations(
		envelope.F("protected_private_key", i.ProtectedPrivateKey),
		envelope.F("protected_symmetric_key", i.ProtectedSymmetricKey),
	)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds email and password credentials.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
