package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

// Default page size for history listings.
const defaultHistoryLimit = 50

// HistoryLister defines the interface that the history list service
// must implement.
type HistoryLister interface {
	List(ctx context.Context, userID int64, limit, offset int, favoritesOnly bool) ([]models.DesignDB, error)
}

// HistoryErrorResponse represents an error response for history endpoints
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Design not found
	Error string `json:"error"`
}

// NewHistoryListHandler returns the design history listing endpoint.
// @Summary List design history
// @Description Returns the caller's designs, most recent first, with offset/limit pagination and an optional favorites filter.
// @Tags history
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param favorites_only query bool false "Only favorite designs" default(false)
// @Success 200 {array} models.DesignDB "Design records"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Router /history/all [get]
// @Security BearerAuth
func NewHistoryListHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		limit := defaultHistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		offset := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				offset = parsed
			}
		}

		favoritesOnly := r.URL.Query().Get("favorites_only") == "true"

		designs, err := svc.List(r.Context(), user.ID, limit, offset, favoritesOnly)
		if err != nil {
			logger.Log.Errorw("failed to list history", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(designs)
	}
}
