package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/agenda-backend/internal/domain"
	"github.com/heartmarshall/agenda-backend/internal/service/user"
)

type userService interface {
	GetMe(ctx context.Context) (*domain.User, error)
	GetPublicProfile(ctx context.Context, input user.UsernameInput) (*domain.PublicProfile, error)
	ListNotifications(ctx context.Context, input user.ListNotificationsInput) ([]domain.Notification, error)
}

// UserHandler serves profile and inbox endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetMe(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeResponse(u))
}

// Profile handles GET /users/{username}.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPublicProfile(r.Context(), user.UsernameInput{Username: r.PathValue("username")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(*p))
}

// Notifications handles GET /notifications?limit=N.
func (h *UserHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	var input user.ListNotificationsInput
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = n
	}

	items, err := h.svc.ListNotifications(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(items))
}
