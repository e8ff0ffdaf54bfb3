package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/classifier"
	"github.com/kbellil/interior-design-api/internal/logger"
)

// RoomClassifier defines the classification interface used by the
// predict and classify-room handlers.
type RoomClassifier interface {
	Classify(ctx context.Context, imageBytes []byte) (*classifier.Prediction, error)
}

// PredictResponse is the public classification result
// swagger:model PredictResponse
type PredictResponse struct {
	// Predicted room class
	// example: bedroom
	Class string `json:"class"`

	// Confidence of the prediction
	// example: 0.9713
	Confidence float64 `json:"confidence"`
}

// ClassifyErrorResponse represents a classification error
// swagger:model ClassifyErrorResponse
type ClassifyErrorResponse struct {
	// Error message
	// example: The classification model is not available
	Error string `json:"error"`
}

// NewPredictHandler returns the public, unauthenticated classification
// endpoint. It reports only the top label; the per-label scores are
// reserved for the authenticated variant.
// @Summary Classify a room photo (public)
// @Description Classifies the uploaded photo and returns the top label and its confidence.
// @Tags classification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Room photo"
// @Success 200 {object} handlers.PredictResponse "Prediction"
// @Failure 400 {object} handlers.ClassifyErrorResponse "Missing or unreadable file"
// @Failure 500 {object} handlers.ClassifyErrorResponse "Model unavailable or inference failure"
// @Router /predict [post]
func NewPredictHandler(clf RoomClassifier) http.HandlerFunc {
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
		json.NewEncoder(w).Encode(PredictResponse{
			Class:      pred.Class,
			Confidence: pred.Confidence,
		})
	}
}

func writeClassifyError(w http.ResponseWriter, err error) {
	if errors.Is(err, classifier.ErrModelUnavailable) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ClassifyErrorResponse{
			Error: "The classification model is not available",
		})
		return
	}

	logger.Log.Errorw("classification failed", "err", err)
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ClassifyErrorResponse{
		Error: "Internal server error",
	})
}
