package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/services"
)

// HistoryDeleter defines the interface that the design delete service
// must implement.
type HistoryDeleter interface {
	Delete(ctx context.Context, userID, designID int64) error
}

// DeleteDesignResponse confirms a deletion
// swagger:model DeleteDesignResponse
type DeleteDesignResponse struct {
	// example: Design deleted successfully
	Message string `json:"message"`
}

// NewHistoryDeleteHandler returns the design delete endpoint.
// @Summary Delete a design
// @Description Removes one of the caller's designs from history.
// @Tags history
// @Produce json
// @Param id path int true "Design ID"
// @Success 200 {object} handlers.DeleteDesignResponse "Design deleted"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 404 {object} handlers.HistoryErrorResponse "Design not found"
// @Failure 500 {object} handlers.HistoryErrorResponse "Database failure"
// @Router /history/{id} [delete]
// @Security BearerAuth
func NewHistoryDeleteHandler(svc HistoryDeleter) http.HandlerFunc {
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
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Design not found"})
			return
		}

		err = svc.Delete(r.Context(), user.ID, designID)
		switch {
		case errors.Is(err, services.ErrDesignNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Design not found"})
			return
		case err != nil:
			logger.Log.Errorw("failed to delete design", "design_id", designID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteDesignResponse{Message: "Design deleted successfully"})
	}
}
