package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/agenda-backend/internal/domain"
)

type lockService interface {
	AdminLock(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
	AdminUnlock(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
}

type roleService interface {
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	locks lockService
	roles roleService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(locks lockService, roles roleService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		locks: locks,
		roles: roles,
		log:   logger.With("handler", "admin"),
	}
}

type accountStatusResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func toAccountStatus(u *domain.User) accountStatusResponse {
	return accountStatusResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role.String(),
		IsActive: u.IsActive,
	}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// Lock handles POST /admin/users/{id}/lock.
func (h *AdminHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.locks.AdminLock)
}

// Unlock handles POST /admin/users/{id}/unlock.
func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.locks.AdminUnlock)
}

// SetRole handles PUT /admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.apply(w, r, func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
		return h.roles.SetUserRole(ctx, id, domain.UserRole(req.Role))
	})
}

func (h *AdminHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, uuid.UUID) (*domain.User, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountStatus(u))
}
