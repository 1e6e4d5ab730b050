package user

import (
	"strings"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

const (
	defaultInboxLimit = 50
	maxInboxLimit     = 200
)

// UsernameInput names another account.
type UsernameInput struct {
	Username string
}

// Validate validates the username.
func (i UsernameInput) Validate() error {
	name := strings.TrimSpace(i.Username)
	if name == "" {
		return domain.NewValidationError("username", "required")
	}
	if len(name) > 150 {
		return domain.NewValidationError("username", "too long")
	}
	return nil
}

// ListNotificationsInput bounds an inbox read. Zero means the default.
type ListNotificationsInput struct {
	Limit int
}

// Validate validates the limit.
func (i ListNotificationsInput) Validate() error {
	if i.Limit < 0 || i.Limit > maxInboxLimit {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}

func (i ListNotificationsInput) limit() int64 {
	if i.Limit == 0 {
		return defaultInboxLimit
	}
	return int64(i.Limit)
}
