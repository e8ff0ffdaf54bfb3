package services

import (
	"context"

	"github.com/kbellil/interior-design-api/internal/models"
)

// ProfileReader defines read-only operations for user profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error)
}

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	Upsert(ctx context.Context, userID int64, bio, phone, favoriteStyle, profilePicture *string) (*models.UserProfileDB, error)
}

// ProfileService handles the optional 1:1 user profile.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// Get returns the user's profile. A user who never updated their profile
// gets an empty one; the row is only created on first update.
func (svc *ProfileService) Get(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.UserProfileDB{UserID: userID}, nil
	}
	return profile, nil
}

// Update upserts the profile. Nil fields are left untouched.
func (svc *ProfileService) Update(ctx context.Context, userID int64, bio, phone, favoriteStyle, profilePicture *string) (*models.UserProfileDB, error) {
	return svc.writer.Upsert(ctx, userID, bio, phone, favoriteStyle, profilePicture)
}
