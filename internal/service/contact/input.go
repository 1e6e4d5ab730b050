package contact

import (
	"strings"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// UsernameInput names the other party of a contact operation.
type UsernameInput struct {
	Username string
}

// Validate checks all fields and collects all errors.
func (i UsernameInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(i.Username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 150 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UsernameInput) normalized() string {
	return strings.TrimSpace(i.Username)
}
