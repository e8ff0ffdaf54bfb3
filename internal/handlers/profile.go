package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/models"
)

// ProfileGetter defines the interface that the profile read service
// must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID int64) (*models.UserProfileDB, error)
}

// ProfileUpdater defines the interface that the profile write service
// must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, bio, phone, favoriteStyle, profilePicture *string) (*models.UserProfileDB, error)
}

// UpdateProfileRequest carries a partial profile update; absent
// fields keep their current values
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// example: Interior design enthusiast
	Bio *string `json:"bio,omitempty"`

	// example: +1-555-0199
	Phone *string `json:"phone,omitempty"`

	// example: modern
	FavoriteStyle *string `json:"favorite_style,omitempty"`

	// example: https://example.com/avatar.jpg
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ProfileErrorResponse describes a profile endpoint failure
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// example: Internal server error
	Error string `json:"error"`
}

// NewProfileGetHandler returns the profile read endpoint.
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfileDB "Profile data"
// @Failure 401 {object} handlers.ProfileErrorResponse "Invalid or missing token"
// @Failure 500 {object} handlers.ProfileErrorResponse "Database failure"
// @Router /api/profile [get]
// @Security BearerAuth
func NewProfileGetHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		profile, err := svc.Get(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to load profile", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewProfileUpdateHandler returns the profile update endpoint.
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.UserProfileDB "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ProfileErrorResponse "Invalid or missing token"
// @Failure 500 {object} handlers.ProfileErrorResponse "Database failure"
// @Router /api/profile [put]
// @Security BearerAuth
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		profile, err := svc.Update(r.Context(), user.ID, req.Bio, req.Phone, req.FavoriteStyle, req.ProfilePicture)
		if err != nil {
			logger.Log.Errorw("failed to update profile", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
