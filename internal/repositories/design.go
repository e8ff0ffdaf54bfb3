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

// DesignReadRepository handles design history lookups. Every query is
// scoped by user_id so a caller can never see another user's records.
type DesignReadRepository struct {
	db *sqlx.DB
}

func NewDesignReadRepository(db *sqlx.DB) *DesignReadRepository {
	return &DesignReadRepository{db: db}
}

// ListByUser returns a page of the user's designs, most recent first.
func (r *DesignReadRepository) ListByUser(ctx context.Context, userID int64, limit, offset int, favoritesOnly bool) ([]models.DesignDB, error) {
	const query = `
		SELECT id, user_id, original_image_path, generated_image_path,
		       room_type, style, confidence, is_favorite, created_at
		FROM design_history
		WHERE user_id = $1
		  AND ($2::BOOLEAN IS FALSE OR is_favorite = TRUE)
		ORDER BY created_at DESC, id DESC
		OFFSET $3 LIMIT $4
	`
	args := []any{userID, favoritesOnly, offset, limit}

	designs := []models.DesignDB{}
	err := r.db.SelectContext(ctx, &designs, query, args...)

	logger.Log.Infow("design list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(designs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return designs, nil
}

// GetByID returns one design owned by the user, or nil when the id does not
// exist or belongs to someone else. The two cases are indistinguishable.
func (r *DesignReadRepository) GetByID(ctx context.Context, userID, designID int64) (*models.DesignDB, error) {
	const query = `
		SELECT id, user_id, original_image_path, generated_image_path,
		       room_type, style, confidence, is_favorite, created_at
		FROM design_history
		WHERE id = $1 AND user_id = $2
	`

	var design models.DesignDB
	err := r.db.GetContext(ctx, &design, query, designID, userID)

	logger.Log.Infow("design query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{designID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &design, nil
}

// Stats aggregates the user's history: totals plus per-style and
// per-room-type distributions over non-null labels.
func (r *DesignReadRepository) Stats(ctx context.Context, userID int64) (*models.DesignStats, error) {
	const totalsQuery = `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_favorite) AS favorites
		FROM design_history
		WHERE user_id = $1
	`
	const styleQuery = `
		SELECT style, COUNT(*) AS count
		FROM design_history
		WHERE user_id = $1 AND style IS NOT NULL
		GROUP BY style
	`
	const roomQuery = `
		SELECT room_type, COUNT(*) AS count
		FROM design_history
		WHERE user_id = $1 AND room_type IS NOT NULL
		GROUP BY room_type
	`

	var totals struct {
		Total     int64 `db:"total"`
		Favorites int64 `db:"favorites"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery, userID); err != nil {
		logger.Log.Errorw("design stats totals failed", "user_id", userID, "error", err)
		return nil, err
	}

	styles := []models.StyleCount{}
	if err := r.db.SelectContext(ctx, &styles, styleQuery, userID); err != nil {
		logger.Log.Errorw("design stats styles failed", "user_id", userID, "error", err)
		return nil, err
	}

	rooms := []models.RoomCount{}
	if err := r.db.SelectContext(ctx, &rooms, roomQuery, userID); err != nil {
		logger.Log.Errorw("design stats rooms failed", "user_id", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("design stats",
		"user_id", userID,
		"total", totals.Total,
		"favorites", totals.Favorites,
	)

	return &models.DesignStats{
		TotalDesigns:      totals.Total,
		TotalFavorites:    totals.Favorites,
		StyleDistribution: styles,
		RoomDistribution:  rooms,
	}, nil
}

// DesignWriteRepository handles design history mutations.
type DesignWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDesignWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DesignWriteRepository {
	return &DesignWriteRepository{db: db, txGetter: txGetter}
}

func (r *DesignWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new design record and returns it.
func (r *DesignWriteRepository) Save(ctx context.Context, userID int64, originalPath, generatedPath string, roomType, style, confidence *string) (*models.DesignDB, error) {
	const query = `
		INSERT INTO design_history
			(user_id, original_image_path, generated_image_path, room_type, style, confidence, is_favorite, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING id, user_id, original_image_path, generated_image_path,
		          room_type, style, confidence, is_favorite, created_at
	`
	args := []any{userID, originalPath, generatedPath, roomType, style, confidence}

	var design models.DesignDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &design, query, args...)

	logger.Log.Infow("design insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", design.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &design, nil
}

// SetFavorite sets the favorite flag on a design owned by the user.
// Returns nil when the id does not exist or is not owned by the user.
func (r *DesignWriteRepository) SetFavorite(ctx context.Context, userID, designID int64, isFavorite bool) (*models.DesignDB, error) {
	const query = `
		UPDATE design_history
		SET is_favorite = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, original_image_path, generated_image_path,
		          room_type, style, confidence, is_favorite, created_at
	`

	var design models.DesignDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &design, query, designID, userID, isFavorite)

	logger.Log.Infow("design favorite update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{designID, userID, isFavorite},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &design, nil
}

// Delete removes a design owned by the user. Reports whether a row was
// actually deleted.
func (r *DesignWriteRepository) Delete(ctx context.Context, userID, designID int64) (bool, error) {
	const query = `
		DELETE FROM design_history
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, designID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("design delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{designID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
