package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/middlewares"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/services"
)

//go:generate mockgen -source=submit_data_detail.go -destination=submit_data_detail_mock.go -package=handlers

// PerevalGetter defines the interface that the service must implement to read one pereval.
type PerevalGetter interface {
	Get(ctx context.Context, id int64) (*models.PerevalDetail, error)
}

// PerevalUpdater defines the interface that the service must implement to edit a pereval.
type PerevalUpdater interface {
	Update(ctx context.Context, id int64, data map[string]any, uploads []models.ImageUpload) error
}

// NewSubmitDataDetailHandler returns an HTTP handler that renders one pereval.
// @Summary Get a pereval
// @Tags submitData
// @Produce json
// @Param id path int true "Pereval ID"
// @Success 200 {object} models.PerevalResponse "Pereval detail"
// @Failure 404 {object} models.NotFoundResponse "Pereval not found"
// @Router /api/submitData/{id} [get]
func NewSubmitDataDetailHandler(svc PerevalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := perevalID(r)
		if !ok {
			writeNotFound(w)
			return
		}

		detail, err := svc.Get(r.Context(), id)
		switch {
		case errors.Is(err, services.ErrPerevalNotFound):
			writeNotFound(w)
		case err != nil:
			logger.Log.Errorw("failed to get pereval", "request_id", middlewares.RequestIDFromContext(r.Context()), "pereval_id", id, "err", err)
			writeJSON(w, http.StatusInternalServerError, models.NotFoundResponse{Detail: err.Error()})
		default:
			writeJSON(w, http.StatusOK, toPerevalResponse(r, detail))
		}
	}
}

// NewSubmitDataUpdateHandler returns an HTTP handler that edits a pereval with status new.
// @Summary Edit a pereval
// @Description Partial update of a pereval that is still new. User fields cannot be edited.
// @Description A present images key (or uploaded images) replaces all images of the pereval.
// @Tags submitData
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Pereval ID"
// @Param pereval body models.PerevalResponse true "Fields to change"
// @Success 200 {object} models.UpdateResponse "Update applied"
// @Failure 400 {object} models.UpdateResponse "Validation error or edit refused"
// @Failure 404 {object} models.UpdateResponse "Pereval not found"
// @Failure 500 {object} models.UpdateResponse "Internal error"
// @Router /api/submitData/{id} [patch]
// @Router /api/submitData/{id} [put]
func NewSubmitDataUpdateHandler(svc PerevalUpdater, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer cleanupMultipart(r)

		id, ok := perevalID(r)
		if !ok {
			writeUpdateFailure(w, http.StatusNotFound, notFoundDetail)
			return
		}

		data, uploads, err := readSubmission(w, r, maxBytes)
		if err == nil {
			err = svc.Update(r.Context(), id, data, uploads)
		}

		var (
			verr     *services.ValidationError
			rejected *services.RejectedError
		)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.UpdateResponse{State: 1})
		case errors.As(err, &verr):
			writeUpdateFailure(w, http.StatusBadRequest, validationMessage(verr))
		case errors.As(err, &rejected):
			writeUpdateFailure(w, http.StatusBadRequest, rejected.Reason)
		case errors.Is(err, services.ErrPerevalNotFound):
			writeUpdateFailure(w, http.StatusNotFound, notFoundDetail)
		default:
			logger.Log.Errorw("failed to update pereval", "request_id", middlewares.RequestIDFromContext(r.Context()), "pereval_id", id, "err", err)
			writeUpdateFailure(w, http.StatusInternalServerError, err.Error())
		}
	}
}

func writeUpdateFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.UpdateResponse{State: 0, Message: &msg})
}

func perevalID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
