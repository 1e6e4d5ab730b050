package event

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/envelope"
)

// CreateEventInput holds the envelopes of a new event.
type CreateEventInput struct {
	ProtectedEventKey string
	Title             string
	StartDate         string
	EndDate           *string
	Description       *string
	Location          *string
	Participants      *string
}

// Validate checks that required fields are present. Envelope shape is
// checked separately because a failure there locks the account.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ProtectedEventKey == "" {
		errs = append(errs, domain.FieldError{Field: "protected_event_key", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.StartDate == "" {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateEventInput) envelopes() []envelope.Field {
	fields := []envelope.Field{
		envelope.F("protected_event_key", i.ProtectedEventKey),
		envelope.F("title", i.Title),
		envelope.F("start_date", i.StartDate),
	}
	fields = append(fields, envelope.Opt("end_date", i.EndDate)...)
	fields = append(fields, envelope.Opt("description", i.Description)...)
	fields = append(fields, envelope.Opt("location", i.Location)...)
	fields = append(fields, envelope.Opt("participants", i.Participants)...)
	return fields
}

// UpdateEventInput holds a partial update. nil fields are left unchanged.
type UpdateEventInput struct {
	EventID           uuid.UUID
	ProtectedEventKey *string
	Title             *string
	StartDate         *string
	EndDate           *string
	Description       *string
	Location          *string
	Participants      *string
}

func (i UpdateEventInput) params() domain.EventUpdateParams {
	return domain.EventUpdateParams{
		ProtectedEventKey: i.ProtectedEventKey,
		Title:             i.Title,
		StartDate:         i.StartDate,
		EndDate:           i.EndDate,
		Description:       i.Description,
		Location:          i.Location,
		Participants:      i.Participants,
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	for _, f := range i.envelopes() {
		if f.Value == "" {
			errs = append(errs, domain.FieldError{Field: f.Name, Message: "must not be empty"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateEventInput) envelopes() []envelope.Field {
	var fields []envelope.Field
	fields = append(fields, envelope.Opt("protected_event_key", i.ProtectedEventKey)...)
	fields = append(fields, envelope.Opt("title", i.Title)...)
	fields = append(fields, envelope.Opt("start_date", i.StartDate)...)
	fields = append(fields, envelope.Opt("end_date", i.EndDate)...)
	fields = append(fields, envelope.Opt("description", i.Description)...)
	fields = append(fields, envelope.Opt("location", i.Location)...)
	fields = append(fields, envelope.Opt("participants", i.Participants)...)
	return fields
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
