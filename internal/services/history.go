package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/models"
)

// Error variables
var (
	ErrDesignNotFound   = errors.New("design not found")
	ErrInvalidImageType = errors.New("invalid image type, use 'original' or 'generated'")
)

// Image type selectors accepted by Download.
const (
	ImageTypeOriginal  = "original"
	ImageTypeGenerated = "generated"
)

// DesignReader defines read-only operations for design history.
type DesignReader interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int, favoritesOnly bool) ([]models.DesignDB, error)
	GetByID(ctx context.Context, userID, designID int64) (*models.DesignDB, error)
	Stats(ctx context.Context, userID int64) (*models.DesignStats, error)
}

// DesignWriter defines write operations for design history.
type DesignWriter interface {
	Save(ctx context.Context, userID int64, originalPath, generatedPath string, roomType, style, confidence *string) (*models.DesignDB, error)
	SetFavorite(ctx context.Context, userID, designID int64, isFavorite bool) (*models.DesignDB, error)
	Delete(ctx context.Context, userID, designID int64) (bool, error)
}

// ImageStorer persists design image pairs on disk.
type ImageStorer interface {
	SavePair(userID int64, original, generated []byte) (string, string, error)
	Remove(paths ...string)
	RemoveOnDelete(paths ...string)
	Open(path string) (*os.File, error)
}

// HistoryService handles all design history operations. Every operation
// takes the owning user's id and never crosses user boundaries.
type HistoryService struct {
	reader DesignReader
	writer DesignWriter
	store  ImageStorer
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(reader DesignReader, writer DesignWriter, store ImageStorer) *HistoryService {
	return &HistoryService{
		reader: reader,
		writer: writer,
		store:  store,
	}
}

// List returns a page of the user's designs, newest first.
func (svc *HistoryService) List(ctx context.Context, userID int64, limit, offset int, favoritesOnly bool) ([]models.DesignDB, error) {
	return svc.reader.ListByUser(ctx, userID, limit, offset, favoritesOnly)
}

// Get returns one design owned by the user.
func (svc *HistoryService) Get(ctx context.Context, userID, designID int64) (*models.DesignDB, error) {
	design, err := svc.reader.GetByID(ctx, userID, designID)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrDesignNotFound
	}
	return design, nil
}

// Save writes both images to disk and creates the history record. When
// the record insert fails the files are removed again, so no image is
// left behind without a row pointing at it.
func (svc *HistoryService) Save(ctx context.Context, userID int64, original, generated []byte, roomType, style, confidence *string) (*models.DesignDB, error) {
	originalPath, generatedPath, err := svc.store.SavePair(userID, original, generated)
	if err != nil {
		logger.Log.Errorw("failed to store design images", "user_id", userID, "err", err)
		return nil, err
	}

	design, err := svc.writer.Save(ctx, userID, originalPath, generatedPath, roomType, style, confidence)
	if err != nil {
		logger.Log.Errorw("failed to save design record", "user_id", userID, "err", err)
		svc.store.Remove(originalPath, generatedPath)
		return nil, err
	}

	return design, nil
}

// Transform runs the design transformation for an uploaded room photo.
// The generative model is not wired in yet, so the generated image is a
// copy of the original.
func (svc *HistoryService) Transform(ctx context.Context, userID int64, image []byte, style, roomType string) (*models.DesignDB, error) {
	return svc.Save(ctx, userID, image, image, &roomType, &style, nil)
}

// SetFavorite sets the favorite flag to the requested value. Setting an
// already-set flag is a no-op that still returns the record.
func (svc *HistoryService) SetFavorite(ctx context.Context, userID, designID int64, isFavorite bool) (*models.DesignDB, error) {
	design, err := svc.writer.SetFavorite(ctx, userID, designID, isFavorite)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrDesignNotFound
	}
	return design, nil
}

// Delete removes the history record. Image files are only removed when
// the store was configured to do so.
func (svc *HistoryService) Delete(ctx context.Context, userID, designID int64) error {
	design, err := svc.reader.GetByID(ctx, userID, designID)
	if err != nil {
		return err
	}
	if design == nil {
		return ErrDesignNotFound
	}

	deleted, err := svc.writer.Delete(ctx, userID, designID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDesignNotFound
	}

	svc.store.RemoveOnDelete(design.OriginalImagePath, design.GeneratedImagePath)
	return nil
}

// Stats aggregates the user's history.
func (svc *HistoryService) Stats(ctx context.Context, userID int64) (*models.DesignStats, error) {
	return svc.reader.Stats(ctx, userID)
}

// Download opens the requested image of a design for streaming. The
// caller closes the file. A record that is missing, not owned, or whose
// file is gone from disk all yield ErrDesignNotFound.
func (svc *HistoryService) Download(ctx context.Context, userID, designID int64, imageType string) (*os.File, string, error) {
	if imageType != ImageTypeOriginal && imageType != ImageTypeGenerated {
		return nil, "", ErrInvalidImageType
	}

	design, err := svc.reader.GetByID(ctx, userID, designID)
	if err != nil {
		return nil, "", err
	}
	if design == nil {
		return nil, "", ErrDesignNotFound
	}

	path := design.OriginalImagePath
	if imageType == ImageTypeGenerated {
		path = design.GeneratedImagePath
	}

	f, err := svc.store.Open(path)
	if err != nil {
		logger.Log.Errorw("design image missing on disk", "design_id", designID, "path", path, "err", err)
		return nil, "", ErrDesignNotFound
	}

	filename := fmt.Sprintf("design_%d_%s.jpg", designID, imageType)
	return f, filename, nil
}
