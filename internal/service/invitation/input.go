package invitation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

// CreateInvitationInput carries a new grant. ProtectedEventID,
// ProtectedEventKey and Participants are envelopes.
type CreateInvitationInput struct {
	EventID           uuid.UUID
	InviteeUsername   string
	ProtectedEventID  string
	ProtectedEventKey string
	Participants      string
}

// Validate checks that every field is present.
func (i CreateInvitationInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	username := strings.TrimSpace(i.InviteeUsername)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}
	if i.ProtectedEventID == "" {
		errs = append(errs, domain.FieldError{Field: "protected_event_id", Message: "required"})
	}
	if i.ProtectedEventKey == "" {
		errs = append(errs, domain.FieldError{Field: "protected_event_key", Message: "required"})
	}
	if i.Participants == "" {
		errs = append(errs, domain.FieldError{Field: "participants", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInvitationInput) envelopes() []envelope.Field {
	return []envelope.Field{
		envelope.F("protected_event_id", i.ProtectedEventID),
		envelope.F("protected_event_key", i.ProtectedEventKey),
		envelope.F("participants", i.Participants),
	}
}

// RespondInvitationInput is the invitee's answer.
type RespondInvitationInput struct {
	InvitationID uuid.UUID
	Status       domain.InvitationStatus
}

// Validate checks all fields and collects all errors.
func (i RespondInvitationInput) Validate() error {
	var errs []domain.FieldError

	if i.InvitationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "invitation_id", Message: "required"})
	}
	if i.Status != domain.InvitationStatusAccepted && i.Status != domain.InvitationStatusDeclined {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACCEPTED or DECLINED"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EventIDInput identifies an event.
type EventIDInput struct {
	EventID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i EventIDInput) Validate() error {
	if i.EventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}
	return nil
}
