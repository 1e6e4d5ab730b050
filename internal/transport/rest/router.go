package rest

import (
	"net/http"

	"github.com/heartmarshall/agenda-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	User    *UserHandler
	Contact *ContactHandler
	Event   *EventHandler
	Admin   *AdminHandler
}

// NewRouter mounts all routes. authLimit throttles the unauthenticated auth
// endpoints. Callers wrap the result with the global chain, Auth included.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAuth(fn))
	}

	protected("GET /users/me", h.User.Me)
	protected("GET /users/{username}", h.User.Profile)
	protected("GET /notifications", h.User.Notifications)

	protected("GET /contacts", h.Contact.List)
	protected("DELETE /contacts/{username}", h.Contact.Remove)
	protected("GET /contacts/{username}/mutual", h.Contact.Mutual)
	protected("GET /contacts/requests/received", h.Contact.Received)
	protected("GET /contacts/requests/sent", h.Contact.Sent)
	protected("POST /contacts/requests", h.Contact.Send)
	protected("POST /contacts/requests/{username}/accept", h.Contact.Accept)
	protected("POST /contacts/requests/{username}/decline", h.Contact.Decline)
	protected("POST /contacts/requests/{username}/cancel", h.Contact.Cancel)

	protected("POST /events", h.Event.Create)
	protected("GET /events", h.Event.List)
	protected("GET /events/mine", h.Event.Mine)
	protected("GET /events/{id}", h.Event.Get)
	protected("PATCH /events/{id}", h.Event.Update)
	protected("DELETE /events/{id}", h.Event.Delete)
	protected("POST /events/{id}/invitations", h.Event.Invite)
	protected("GET /events/{id}/invitations", h.Event.Invitations)
	protected("GET /invitations", h.Event.MyInvitations)
	protected("POST /invitations/{id}/respond", h.Event.Respond)

	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAdmin(fn))
	}

	admin("POST /admin/users/{id}/lock", h.Admin.Lock)
	admin("POST /admin/users/{id}/unlock", h.Admin.Unlock)
	admin("PUT /admin/users/{id}/role", h.Admin.SetRole)

	return mux
}
