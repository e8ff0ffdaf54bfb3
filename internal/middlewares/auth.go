package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/jwt"
	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/models"
)

// Tokener defines the minimal token interface needed by the auth gate.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject to a persisted user.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

type userContextKey struct{}

// UserFromContext returns the authenticated user placed in the context by
// AuthMiddleware, or nil outside a protected route.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey{}).(*models.UserDB)
	return user
}

// ContextWithUser attaches a user the way AuthMiddleware does.
func ContextWithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// AuthMiddleware verifies the bearer token and resolves it to a user
// record, which downstream handlers read with UserFromContext. An
// invalid or expired token yields 401; a valid token whose subject no
// longer exists yields 404. The user is loaded from the store on every
// request.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			user, err := users.GetByEmail(ctx, claims.Email)
			if err != nil {
				logger.Log.Errorw("failed to resolve token subject", "err", err)
				writeAuthError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				logger.Log.Infow("token subject not found", "email", claims.Email)
				writeAuthError(w, http.StatusNotFound, "User not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(ctx, user)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
