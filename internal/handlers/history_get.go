package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
	"github.com/kbellil/interior-design-api/internal/services"
)

// HistoryGetter defines the interface that the history get service
// must implement.
type HistoryGetter interface {
	Get(ctx context.Context, userID, designID int64) (*models.DesignDB, error)
}

// designIDFromRequest parses the {id} route parameter.
func designIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewHistoryGetHandler returns the single-design endpoint. A design
// that does not exist and a design owned by another user are both
// reported as not found.
// @Summary Get one design
// @Description Returns one design of the caller's history by id.
// @Tags history
// @Produce json
// @Param id path int true "Design id"
// @Success 200 {object} models.DesignDB "Design record"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 404 {object} handlers.HistoryErrorResponse "Design not found"
// @Router /history/{id} [get]
// @Security BearerAuth
func NewHistoryGetHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		designID, err := designIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Design not found",
			})
			return
		}

		design, err := svc.Get(r.Context(), user.ID, designID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDesignNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(HistoryErrorResponse{
					Error: "Design not found",
				})
			default:
				logger.Log.Errorw("failed to get design", "design_id", designID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(HistoryErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(design)
	}
}
