package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

// Transformer defines the interface that the transformation service
// must implement.
type Transformer interface {
	Transform(ctx context.Context, userID int64, image []byte, style, roomType string) (*models.DesignDB, error)
}

// TransformResponse is the result of a room transformation
// swagger:model TransformResponse
type TransformResponse struct {
	// example: true
	Success bool `json:"success"`

	// example: Design created and saved
	Message string `json:"message"`

	// example: 1
	DesignID int64 `json:"design_id"`

	// example: alice@example.com
	UserEmail string `json:"user_email"`

	// example: modern
	Style string `json:"style"`

	// example: bedroom
	RoomType string `json:"room_type"`

	// example: uploads/designs/original_1_3f2a.jpg
	OriginalImage string `json:"original_image"`

	// example: uploads/designs/generated_1_3f2a.jpg
	GeneratedImage string `json:"generated_image"`
}

// TransformErrorResponse represents a transformation error
// swagger:model TransformErrorResponse
type TransformErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewTransformRoomHandler returns the room transformation endpoint.
// The generative model is not integrated yet; the generated image is a
// copy of the upload, which still exercises the full save path.
// @Summary Transform a room photo
// @Description Applies the requested style to the uploaded room photo and records the design in the history.
// @Tags transformation
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Room photo"
// @Param style formData string true "Requested style"
// @Param room_type formData string true "Room type"
// @Success 200 {object} handlers.TransformResponse "Design created"
// @Failure 400 {object} handlers.TransformErrorResponse "Missing file or form fields"
// @Failure 401 {object} handlers.TransformErrorResponse "Invalid or missing token"
// @Router /api/transform-room [post]
// @Security BearerAuth
func NewTransformRoomHandler(svc Transformer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		imageBytes, err := readUploadedFile(r, "file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransformErrorResponse{
				Error: "Missing or unreadable image file",
			})
			return
		}

		style := r.FormValue("style")
		roomType := r.FormValue("room_type")
		if style == "" || roomType == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransformErrorResponse{
				Error: "style and room_type are required",
			})
			return
		}

		design, err := svc.Transform(r.Context(), user.ID, imageBytes, style, roomType)
		if err != nil {
			logger.Log.Errorw("transform failed", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransformErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransformResponse{
			Success:        true,
			Message:        "Design created and saved",
			DesignID:       design.ID,
			UserEmail:      user.Email,
			Style:          style,
			RoomType:       roomType,
			OriginalImage:  design.OriginalImagePath,
			GeneratedImage: design.GeneratedImagePath,
		})
	}
}
