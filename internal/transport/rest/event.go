package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/service/event"
	"github.com/heartmarshall/agenda-backend/internal/service/invitation"
)

type eventService interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, input event.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, input event.EventIDInput) error
	GetEvent(ctx context.Context, input event.EventIDInput) (*domain.Event, error)
	ListEventsVisibleTo(ctx context.Context) ([]domain.Event, error)
	ListMyEvents(ctx context.Context) ([]domain.Event, error)
}

type invitationService interface {
	CreateInvitation(ctx context.Context, input invitation.CreateInvitationInput) (*domain.Invitation, error)
	RespondInvitation(ctx context.Context, input invitation.RespondInvitationInput) (*domain.Invitation, error)
	ListMyInvitations(ctx context.Context) ([]domain.Invitation, error)
	ListEventInvitations(ctx context.Context, input invitation.EventIDInput) ([]domain.Invitation, error)
}

// EventHandler serves events and the invitations hanging off them.
type EventHandler struct {
	events      eventService
	invitations invitationService
	log         *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventService, invitations invitationService, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, invitations: invitations, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	ProtectedEventKey string  `json:"protected_event_key"`
	Title             string  `json:"title"`
	StartDate         string  `json:"start_date"`
	EndDate           *string `json:"end_date"`
	Description       *string `json:"description"`
	Location          *string `json:"location"`
	Participants      *string `json:"participants"`
}

type updateEventRequest struct {
	ProtectedEventKey *string `json:"protected_event_key"`
	Title             *string `json:"title"`
	StartDate         *string `json:"start_date"`
	EndDate           *string `json:"end_date"`
	Description       *string `json:"description"`
	Location          *string `json:"location"`
	Participants      *string `json:"participants"`
}

type createInvitationRequest struct {
	Username          string `json:"username"`
	ProtectedEventID  string `json:"protected_event_id"`
	ProtectedEventKey string `json:"protected_event_key"`
	Participants      string `json:"participants"`
}

type respondInvitationRequest struct {
	Status string `json:"status"`
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.events.CreateEvent(r.Context(), event.CreateEventInput{
		ProtectedEventKey: req.ProtectedEventKey,
		Title:             req.Title,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Description:       req.Description,
		Location:          req.Location,
		Participants:      req.Participants,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(created))
}

// List handles GET /events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEventsVisibleTo(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Mine handles GET /events/mine.
func (h *EventHandler) Mine(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListMyEvents(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.events.GetEvent(r.Context(), event.EventIDInput{EventID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Update handles PATCH /events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.events.UpdateEvent(r.Context(), event.UpdateEventInput{
		EventID:           id,
		ProtectedEventKey: req.ProtectedEventKey,
		Title:             req.Title,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Description:       req.Description,
		Location:          req.Location,
		Participants:      req.Participants,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

// Delete handles DELETE /events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.events.DeleteEvent(r.Context(), event.EventIDInput{EventID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Invite handles POST /events/{id}/invitations.
func (h *EventHandler) Invite(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createInvitationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.invitations.CreateInvitation(r.Context(), invitation.CreateInvitationInput{
		EventID:           id,
		InviteeUsername:   req.Username,
		ProtectedEventID:  req.ProtectedEventID,
		ProtectedEventKey: req.ProtectedEventKey,
		Participants:      req.Participants,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInvitationResponse(created))
}

// Invitations handles GET /events/{id}/invitations.
func (h *EventHandler) Invitations(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	invs, err := h.invitations.ListEventInvitations(r.Context(), invitation.EventIDInput{EventID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitationResponses(invs))
}

// MyInvitations handles GET /invitations.
func (h *EventHandler) MyInvitations(w http.ResponseWriter, r *http.Request) {
	invs, err := h.invitations.ListMyInvitations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitationResponses(invs))
}

// Respond handles POST /invitations/{id}/respond.
func (h *EventHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req respondInvitationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.invitations.RespondInvitation(r.Context(), invitation.RespondInvitationInput{
		InvitationID: id,
		Status:       domain.InvitationStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvitationResponse(updated))
}
