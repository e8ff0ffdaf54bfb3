package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/middlewares"
)

// NewMeHandler returns an HTTP handler serving the authenticated user's
// own record. The auth middleware has already resolved the token to a
// user, so this handler only reads it back from the context.
// @Summary Current user
// @Description Returns the record of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB "Authenticated user"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid or missing token"
// @Failure 404 {object} handlers.LoginErrorResponse "Token subject no longer exists"
// @Router /api/auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
