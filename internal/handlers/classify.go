package handlers

import (
	"encoding/json"
	"net/http"
)

// ClassifyRoomResponse is the authenticated classification result,
// including the full per-label score map
// swagger:model ClassifyRoomResponse
type ClassifyRoomResponse struct {
	// Predicted room class
	// example: bedroom
	Class string `json:"class"`

	// Confidence of the prediction
	// example: 0.9713
	Confidence float64 `json:"confidence"`

	// Score for every label
	AllPredictions map[string]float64 `json:"all_predictions"`
}

// NewClassifyRoomHandler returns the authenticated classification
// endpoint. Unlike the public variant it exposes the full prediction
// vector.
// @Summary Classify a room photo
// @Description Classifies the uploaded photo and returns the top label plus the score for every label.
// @Tags classification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Room photo"
// @Success 200 {object} handlers.ClassifyRoomResponse "Prediction with all scores"
// @Failure 401 {object} handlers.ClassifyErrorResponse "Invalid or missing token"
// @Failure 500 {object} handlers.ClassifyErrorResponse "Model unavailable or inference failure"
// @Router /api/classify-room [post]
// @Security BearerAuth
func NewClassifyRoomHandler(clf RoomClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		imageBytes, err := readUploadedFile(r, "file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClassifyErrorResponse{
				Error: "Missing or unreadable image file",
			})
			return
		}

		pred, err := clf.Classify(r.Context(), imageBytes)
		if err != nil {
			writeClassifyError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClassifyRoomResponse{
			Class:          pred.Class,
			Confidence:     pred.Confidence,
			AllPredictions: pred.Scores,
		})
	}
}
