package models

import "time"

// UserProfileDB represents the optional 1:1 profile extension of a user.
type UserProfileDB struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Bio            *string   `json:"bio" db:"bio"`
	Phone          *string   `json:"phone" db:"phone"`
	FavoriteStyle  *string   `json:"favorite_style" db:"favorite_style"`
	ProfilePicture *string   `json:"profile_picture" db:"profile_picture"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
