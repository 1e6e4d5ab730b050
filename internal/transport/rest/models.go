package rest

import (
	"time"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

// Field names follow the storage names so validation errors, which report
// field names, line up with request bodies.

type meResponse struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	Username              string    `json:"username"`
	PublicKey             string    `json:"public_key"`
	ProtectedPrivateKey   string    `json:"protected_private_key"`
	ProtectedSymmetricKey string    `json:"protected_symmetric_key"`
	Role                  string    `json:"role"`
	CreatedAt             time.Time `json:"created_at"`
}

func toMeResponse(u *domain.User) meResponse {
	return meResponse{
		ID:                    u.ID.String(),
		Email:                 u.Email,
		Username:              u.Username,
		PublicKey:             u.PublicKey,
		ProtectedPrivateKey:   u.ProtectedPrivateKey,
		ProtectedSymmetricKey: u.ProtectedSymmetricKey,
		Role:                  u.Role.String(),
		CreatedAt:             u.CreatedAt,
	}
}

type profileResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	PublicKey string `json:"public_key"`
}

func toProfileResponse(p domain.PublicProfile) profileResponse {
	return profileResponse{ID: p.ID.String(), Username: p.Username, PublicKey: p.PublicKey}
}

func toProfileResponses(ps []domain.PublicProfile) []profileResponse {
	out := make([]profileResponse, len(ps))
	for i, p := range ps {
		out[i] = toProfileResponse(p)
	}
	return out
}

type contactRequestResponse struct {
	ID         string     `json:"id"`
	Sender     string     `json:"sender"`
	Receiver   string     `json:"receiver"`
	IsActive   bool       `json:"is_active"`
	Outcome    string     `json:"outcome"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func toContactRequestResponse(r *domain.ContactRequest) contactRequestResponse {
	return contactRequestResponse{
		ID:         r.ID.String(),
		Sender:     r.SenderUsername,
		Receiver:   r.ReceiverUsername,
		IsActive:   r.IsActive,
		Outcome:    r.Outcome.String(),
		CreatedAt:  r.CreatedAt,
		ResolvedAt: r.ResolvedAt,
	}
}

func toContactRequestResponses(rs []domain.ContactRequest) []contactRequestResponse {
	out := make([]contactRequestResponse, len(rs))
	for i := range rs {
		out[i] = toContactRequestResponse(&rs[i])
	}
	return out
}

type eventResponse struct {
	ID                string    `json:"id"`
	Creator           string    `json:"creator"`
	ProtectedEventKey string    `json:"protected_event_key"`
	Title             string    `json:"title"`
	StartDate         string    `json:"start_date"`
	EndDate           *string   `json:"end_date,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Location          *string   `json:"location,omitempty"`
	Participants      *string   `json:"participants,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:                e.ID.String(),
		Creator:           e.CreatorUsername,
		ProtectedEventKey: e.ProtectedEventKey,
		Title:             e.Title,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		Description:       e.Description,
		Location:          e.Location,
		Participants:      e.Participants,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func toEventResponses(es []domain.Event) []eventResponse {
	out := make([]eventResponse, len(es))
	for i := range es {
		out[i] = toEventResponse(&es[i])
	}
	return out
}

type invitationResponse struct {
	ID                string     `json:"id"`
	EventID           string     `json:"event_id"`
	Invitee           string     `json:"invitee"`
	ProtectedEventID  string     `json:"protected_event_id"`
	ProtectedEventKey string     `json:"protected_event_key"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	RespondedAt       *time.Time `json:"responded_at,omitempty"`
}

func toInvitationResponse(inv *domain.Invitation) invitationResponse {
	return invitationResponse{
		ID:                inv.ID.String(),
		EventID:           inv.EventID.String(),
		Invitee:           inv.InvitedUsername,
		ProtectedEventID:  inv.ProtectedEventID,
		ProtectedEventKey: inv.ProtectedEventKey,
		Status:            inv.Status.String(),
		CreatedAt:         inv.CreatedAt,
		RespondedAt:       inv.RespondedAt,
	}
}

func toInvitationResponses(invs []domain.Invitation) []invitationResponse {
	out := make([]invitationResponse, len(invs))
	for i := range invs {
		out[i] = toInvitationResponse(&invs[i])
	}
	return out
}

type notificationResponse struct {
	Kind      string            `json:"kind"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func toNotificationResponses(ns []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(ns))
	for i, n := range ns {
		out[i] = notificationResponse{
			Kind:      n.Kind.String(),
			Subject:   n.Subject,
			Body:      n.Body,
			Context:   n.Context,
			RequestID: n.RequestID,
			CreatedAt: n.CreatedAt,
		}
	}
	return out
}
