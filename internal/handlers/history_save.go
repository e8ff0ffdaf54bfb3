package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

// HistorySaver defines the interface that the history save service
// must implement.
type HistorySaver interface {
	Save(ctx context.Context, userID int64, original, generated []byte, roomType, style, confidence *string) (*models.DesignDB, error)
}

// SaveDesignResponse confirms a saved design
// swagger:model SaveDesignResponse
type SaveDesignResponse struct {
	// example: Design saved successfully
	Message string `json:"message"`

	// example: 1
	DesignID int64 `json:"design_id"`

	// The saved record
	Design *models.DesignDB `json:"design"`
}

// NewHistorySaveHandler returns the design save endpoint. Both images
// are required; the label fields are optional and stored as sent,
// including the confidence, which stays a string.
// @Summary Save a design
// @Description Stores the original and generated images and creates a history record.
// @Tags history
// @Accept multipart/form-data
// @Produce json
// @Param original_image formData file true "Original room photo"
// @Param generated_image formData file true "Generated design image"
// @Param room_type formData string false "Room type label"
// @Param style formData string false "Style label"
// @Param confidence formData string false "Classification confidence"
// @Success 200 {object} handlers.SaveDesignResponse "Design saved"
// @Failure 400 {object} handlers.HistoryErrorResponse "Missing image"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 500 {object} handlers.HistoryErrorResponse "Storage or database failure"
// @Router /history/save [post]
// @Security BearerAuth
func NewHistorySaveHandler(svc HistorySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		original, err := readUploadedFile(r, "original_image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "original_image is required",
			})
			return
		}

		generated, err := readUploadedFile(r, "generated_image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "generated_image is required",
			})
			return
		}

		design, err := svc.Save(r.Context(), user.ID, original, generated,
			optionalFormValue(r, "room_type"),
			optionalFormValue(r, "style"),
			optionalFormValue(r, "confidence"),
		)
		if err != nil {
			logger.Log.Errorw("failed to save design", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{
				Error: "Error saving design",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SaveDesignResponse{
			Message:  "Design saved successfully",
			DesignID: design.ID,
			Design:   design,
		})
	}
}

// optionalFormValue returns nil for an absent or empty form field.
func optionalFormValue(r *http.Request, field string) *string {
	v := r.FormValue(field)
	if v == "" {
		return nil
	}
	return &v
}
