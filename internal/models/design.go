package models

import "time"

// DesignDB represents one saved before/after design transformation.
// Confidence is deliberately stored as text, mirroring what the mobile
// client sends back after classification.
type DesignDB struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"-" db:"user_id"`
	OriginalImagePath  string    `json:"original_image_path" db:"original_image_path"`
	GeneratedImagePath string    `json:"generated_image_path" db:"generated_image_path"`
	RoomType           *string   `json:"room_type" db:"room_type"`
	Style              *string   `json:"style" db:"style"`
	Confidence         *string   `json:"confidence" db:"confidence"`
	IsFavorite         bool      `json:"is_favorite" db:"is_favorite"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// StyleCount is one bucket of the per-style distribution.
type StyleCount struct {
	Style string `json:"style" db:"style"`
	Count int64  `json:"count" db:"count"`
}

// RoomCount is one bucket of the per-room-type distribution.
type RoomCount struct {
	RoomType string `json:"room_type" db:"room_type"`
	Count    int64  `json:"count" db:"count"`
}

// DesignStats aggregates a user's design history.
type DesignStats struct {
	TotalDesigns      int64        `json:"total_designs"`
	TotalFavorites    int64        `json:"total_favorites"`
	StyleDistribution []StyleCount `json:"style_distribution"`
	RoomDistribution  []RoomCount  `json:"room_distribution"`
}
