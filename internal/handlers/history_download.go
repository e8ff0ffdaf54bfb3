package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/kbellil/interior-design-api/internal/logger"
	"github.com/kbellil/interior-design-api/internal/middlewares"
	"github.com/kbellil/interior-design-api/internal/services"
)

// Downloader defines the interface that the image download service
// must implement.
type Downloader interface {
	Download(ctx context.Context, userID, designID int64, imageType string) (*os.File, string, error)
}

// NewHistoryDownloadHandler returns the image download endpoint. The
// type path segment selects the original or the generated image.
// @Summary Download a design image
// @Description Streams one of the stored images of the caller's design as a JPEG attachment.
// @Tags history
// @Produce image/jpeg
// @Param id path int true "Design ID"
// @Param type path string true "Image type" Enums(original, generated)
// @Success 200 {file} file "Image bytes"
// @Failure 400 {object} handlers.HistoryErrorResponse "Unknown image type"
// @Failure 401 {object} handlers.HistoryErrorResponse "Invalid or missing token"
// @Failure 404 {object} handlers.HistoryErrorResponse "Design or file not found"
// @Failure 500 {object} handlers.HistoryErrorResponse "Read failure"
// @Router /history/download/{id}/{type} [get]
// @Security BearerAuth
func NewHistoryDownloadHandler(svc Downloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		designID, err := designIDFromRequest(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Design not found"})
			return
		}

		imageType := chi.URLParam(r, "type")

		file, filename, err := svc.Download(r.Context(), user.ID, designID, imageType)
		switch {
		case errors.Is(err, services.ErrInvalidImageType):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Image type must be original or generated"})
			return
		case errors.Is(err, services.ErrDesignNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Design not found"})
			return
		case err != nil:
			logger.Log.Errorw("failed to open design image", "design_id", designID, "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}
		defer file.Close()

		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, file); err != nil {
			logger.Log.Errorw("failed to stream design image", "design_id", designID, "err", err)
		}
	}
}
