package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

// StatsGetter defines the interface that the history stats service
// must implement.
type StatsGetter interface {
	Stats(ctx context.Context, userID int64) (*models.DesignStats, error)
}

// NewHistoryStatsHandler returns the history summary endpoint.
// @Summary Design history statistics
// @Description Returns totals and per-style / per-room-type counts for the caller's designs.
// @Tags history
// @Produce json
// @Success 200 {object} models.DesignStats "Aggregated statistics"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 500 {object} handlers.HistoryErrorResponse "Database failure"
// @Router /history/stats/summary [get]
// @Security BearerAuth
func NewHistoryStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		stats, err := svc.Stats(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to load design stats", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
