package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/service/contact"
)

type contactService interface {
	SendContactRequest(ctx context.Context, input contact.UsernameInput) (*domain.ContactRequest, error)
	AcceptContactRequest(ctx context.Context, input contact.UsernameInput) (*domain.ContactRequest, error)
	DeclineContactRequest(ctx context.Context, input contact.UsernameInput) (*domain.ContactRequest, error)
	CancelContactRequest(ctx context.Context, input contact.UsernameInput) (*domain.ContactRequest, error)
	RemoveContact(ctx context.Context, input contact.UsernameInput) error
	IsContact(ctx context.Context, input contact.UsernameInput) (bool, error)
	ListContacts(ctx context.Context) ([]domain.PublicProfile, error)
	ListPendingReceived(ctx context.Context) ([]domain.ContactRequest, error)
	ListPendingSent(ctx context.Context) ([]domain.ContactRequest, error)
}

// ContactHandler serves the contact graph endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type usernameRequest struct {
	Username string `json:"username"`
}

// List handles GET /contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.ListContacts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponses(profiles))
}

// Remove handles DELETE /contacts/{username}.
func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveContact(r.Context(), pathUsername(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Mutual handles GET /contacts/{username}/mutual.
func (h *ContactHandler) Mutual(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.IsContact(r.Context(), pathUsername(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"mutual": ok})
}

// Received handles GET /contacts/requests/received.
func (h *ContactHandler) Received(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, h.svc.ListPendingReceived)
}

// Sent handles GET /contacts/requests/sent.
func (h *ContactHandler) Sent(w http.ResponseWriter, r *http.Request) {
	h.listRequests(w, r, h.svc.ListPendingSent)
}

// Send handles POST /contacts/requests.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.SendContactRequest(r.Context(), contact.UsernameInput{Username: req.Username})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContactRequestResponse(created))
}

// Accept handles POST /contacts/requests/{username}/accept.
func (h *ContactHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.AcceptContactRequest)
}

// Decline handles POST /contacts/requests/{username}/decline.
func (h *ContactHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.DeclineContactRequest)
}

// Cancel handles POST /contacts/requests/{username}/cancel.
func (h *ContactHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.CancelContactRequest)
}

func (h *ContactHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, contact.UsernameInput) (*domain.ContactRequest, error),
) {
	req, err := op(r.Context(), pathUsername(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactRequestResponse(req))
}

func (h *ContactHandler) listRequests(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context) ([]domain.ContactRequest, error),
) {
	reqs, err := op(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContactRequestResponses(reqs))
}

func pathUsername(r *http.Request) contact.UsernameInput {
	return contact.UsernameInput{Username: r.PathValue("username")}
}
