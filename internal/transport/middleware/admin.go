package middleware

import (
	"net/http"

	"github.com/heartmarshall/agenda-backend/pkg/ctxutil"
)

// RequireAdmin rejects callers without the admin role. It must run after Auth.
// Services repeat the check; this only keeps non-admins away from the routes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeJSONError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
