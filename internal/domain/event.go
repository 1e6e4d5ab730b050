package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry owned by its creator. Every string field except
// the ids is an opaque envelope.
type Event struct {
	ID                uuid.UUID
	CreatorID         uuid.UUID
	CreatorUsername   string
	ProtectedEventKey string
	Title             string
	StartDate         string
	EndDate           *string
	Description       *string
	Location          *string
	Participants      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsCreator reports whether userID owns the event.
func (e *Event) IsCreator(userID uuid.UUID) bool {
	return e.CreatorID == userID
}

// EventUpdateParams holds the fields of a partial update.
// nil means "leave unchanged".
type EventUpdateParams struct {
	ProtectedEventKey *string
	Title             *string
	StartDate         *string
	EndDate           *string
	Description       *string
	Location          *string
	Participants      *string
}

// IsEmpty reports whether no field was supplied.
func (p EventUpdateParams) IsEmpty() bool {
	return p.ProtectedEventKey == nil && p.Title == nil && p.StartDate == nil &&
		p.EndDate == nil && p.Description == nil && p.Location == nil && p.Participants == nil
}
