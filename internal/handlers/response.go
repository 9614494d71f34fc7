package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/payload"
	"github.com/sbilibin2017/pereval-api/internal/services"
)

// mediaPrefix is the URL path under which image objects are served.
const mediaPrefix = "/media/"

const notFoundDetail = "Not found."

const msgBodyTooLarge = "Request body exceeds %d bytes."

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, models.NotFoundResponse{Detail: notFoundDetail})
}

// readSubmission caps the body at maxBytes, normalizes it and extracts multipart images.
// A body that is too large or cannot be parsed is reported as a validation error.
func readSubmission(w http.ResponseWriter, r *http.Request, maxBytes int64) (map[string]any, []models.ImageUpload, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	data, err := payload.Normalize(r, maxBytes)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, services.NewValidationError("non_field_errors", fmt.Sprintf(msgBodyTooLarge, tooLarge.Limit))
		}
		if errors.Is(err, payload.ErrInvalidBody) {
			reason := strings.TrimPrefix(err.Error(), payload.ErrInvalidBody.Error()+": ")
			return nil, nil, services.NewValidationError("non_field_errors", reason)
		}
		return nil, nil, err
	}

	uploads, err := payload.ExtractImages(r)
	if err != nil {
		return nil, nil, err
	}
	return data, uploads, nil
}

// cleanupMultipart removes temporary files of a parsed multipart form.
func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Log.Warnw("failed to remove multipart temp files", "err", err)
		}
	}
}

func validationMessage(err *services.ValidationError) string {
	return "Validation error: " + err.Error()
}

// mediaURL returns the absolute URL of an image object as seen by the client.
// Without a request host the path alone is returned.
func mediaURL(r *http.Request, key string) string {
	u := url.URL{Path: mediaPrefix + key}
	if r.Host == "" {
		return u.String()
	}

	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		u.Scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	u.Host = r.Host
	return u.String()
}

func toPerevalResponse(r *http.Request, d *models.PerevalDetail) models.PerevalResponse {
	images := make([]models.ImageResponse, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, models.ImageResponse{
			ID:        img.ID,
			Title:     img.Title,
			DateAdded: img.DateAdded,
			URL:       mediaURL(r, img.Data),
		})
	}

	return models.PerevalResponse{
		ID:          d.ID,
		BeautyTitle: d.BeautyTitle,
		Title:       d.Title,
		OtherTitles: d.OtherTitles,
		Connect:     d.Connect,
		AddTime:     d.AddTime,
		Status:      d.Status,
		User: models.UserResponse{
			Email:      d.User.Email,
			FirstName:  d.User.FirstName,
			LastName:   d.User.LastName,
			Patronymic: d.User.Patronymic,
			Phone:      d.User.Phone,
		},
		Coords: models.CoordsResponse{
			Latitude:  d.Coords.Latitude,
			Longitude: d.Coords.Longitude,
			Height:    d.Coords.Height,
		},
		Level: models.LevelResponse{
			Winter: d.Level.Winter,
			Summer: d.Level.Summer,
			Autumn: d.Level.Autumn,
			Spring: d.Level.Spring,
		},
		ActivityType: models.ActivityTypeResponse{
			ID:    d.ActivityType.ID,
			Title: d.ActivityType.Title,
		},
		Images: images,
	}
}
