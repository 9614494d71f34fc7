package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/middlewares"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/storage"
)

//go:generate mockgen -source=media.go -destination=media_mock.go -package=handlers

// MediaReader opens stored image objects.
type MediaReader interface {
	Get(ctx context.Context, key string) (*storage.Object, error)
}

// NewMediaHandler returns an HTTP handler that streams an image object.
// @Summary Get an image
// @Tags media
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary "Image content"
// @Failure 404 {object} models.NotFoundResponse "Image not found"
// @Router /media/{key} [get]
func NewMediaHandler(store MediaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		if key == "" || strings.Contains(key, "..") {
			writeNotFound(w)
			return
		}

		obj, err := store.Get(r.Context(), key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			writeNotFound(w)
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to read media object", "request_id", middlewares.RequestIDFromContext(r.Context()), "key", key, "err", err)
			writeJSON(w, http.StatusInternalServerError, models.NotFoundResponse{Detail: "Internal server error"})
			return
		}
		defer obj.Body.Close()

		contentType := obj.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		if obj.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, obj.Body); err != nil {
			logger.Log.Warnw("failed to stream media object", "key", key, "err", err)
		}
	}
}
