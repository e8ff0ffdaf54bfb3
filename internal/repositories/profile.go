package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/models"
)

// ProfileReadRepository handles user profile lookups.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile of a user, or nil when none exists yet.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	const query = `
		SELECT id, user_id, bio, phone, favorite_style, profile_picture, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow("profile query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ProfileWriteRepository handles profile upserts.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Upsert creates the profile lazily on first update. Nil fields keep their
// stored value.
func (r *ProfileWriteRepository) Upsert(ctx context.Context, userID int64, bio, phone, favoriteStyle, profilePicture *string) (*models.UserProfileDB, error) {
	const query = `
		INSERT INTO user_profiles (user_id, bio, phone, favorite_style, profile_picture, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET bio = COALESCE(EXCLUDED.bio, user_profiles.bio),
		    phone = COALESCE(EXCLUDED.phone, user_profiles.phone),
		    favorite_style = COALESCE(EXCLUDED.favorite_style, user_profiles.favorite_style),
		    profile_picture = COALESCE(EXCLUDED.profile_picture, user_profiles.profile_picture),
		    updated_at = NOW()
		RETURNING id, user_id, bio, phone, favorite_style, profile_picture, updated_at
	`
	args := []any{userID, bio, phone, favoriteStyle, profilePicture}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var profile models.UserProfileDB
	err := sqlx.GetContext(ctx, executor, &profile, query, args...)

	logger.Log.Infow("profile upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &profile, nil
}
