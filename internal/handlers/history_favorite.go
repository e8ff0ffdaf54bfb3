package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
	"github.com/kbellil/interior-design-api/internal/services"
)

// FavoriteSetter defines the interface that the favorite toggle
// service must implement.
type FavoriteSetter interface {
	SetFavorite(ctx context.Context, userID, designID int64, isFavorite bool) (*models.DesignDB, error)
}

// FavoriteResponse confirms a favorite change and carries the updated
// record
// swagger:model FavoriteResponse
type FavoriteResponse struct {
	// example: Design added to favorites
	Message string `json:"message"`

	// example: true
	IsFavorite bool `json:"is_favorite"`

	// The updated record
	Design *models.DesignDB `json:"design"`
}

// NewHistoryFavoriteHandler returns the favorite toggle endpoint. The
// new value comes from the required is_favorite query parameter.
// @Summary Mark a design as favorite
// @Description Sets or clears the favorite flag on one of the caller's designs and returns the updated record.
// @Tags history
// @Produce json
// @Param id path int true "Design ID"
// @Param is_favorite query bool true "New favorite value"
// @Success 200 {object} handlers.FavoriteResponse "Favorite updated"
// @Failure 400 {object} handlers.HistoryErrorResponse "Missing or malformed is_favorite"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 404 {object} handlers.HistoryErrorResponse "Design not found"
// @Failure 500 {object} handlers.HistoryErrorResponse "Database failure"
// @Router /history/{id}/favorite [put]
// @Security BearerAuth
func NewHistoryFavoriteHandler(svc FavoriteSetter) http.HandlerFunc {
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

		isFavorite, err := strconv.ParseBool(r.URL.Query().Get("is_favorite"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "is_favorite must be a boolean"})
			return
		}

		design, err := svc.SetFavorite(r.Context(), user.ID, designID, isFavorite)
		switch {
		case errors.Is(err, services.ErrDesignNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Design not found"})
			return
		case err != nil:
			logger.Log.Errorw("failed to update favorite", "design_id", designID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		message := "Design removed from favorites"
		if design.IsFavorite {
			message = "Design added to favorites"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FavoriteResponse{
			Message:    message,
			IsFavorite: design.IsFavorite,
			Design:     design,
		})
	}
}
