package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/middlewares"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/services"
)

//go:generate mockgen -source=submit_data.go -destination=submit_data_mock.go -package=handlers

// PerevalCreator defines the interface that the service must implement to create perevals.
type PerevalCreator interface {
	Create(ctx context.Context, data map[string]any, uploads []models.ImageUpload) (int64, error)
}

// PerevalLister defines the interface that the service must implement to list perevals.
type PerevalLister interface {
	ListByUserEmail(ctx context.Context, email string) ([]models.PerevalDetail, error)
}

// NewSubmitDataCreateHandler returns an HTTP handler that creates a pereval.
// @Summary Submit a pereval
// @Description Accepts a nested pereval as JSON, multipart or url-encoded form. Form keys use dots for nesting (user.email, coords.latitude).
// @Description Images come as files under "images" with "images_titles", or as images[N].data with images[N].title.
// @Description The HTTP status equals the status field of the body.
// @Tags submitData
// @Accept json,mpfd,x-www-form-urlencoded
// @Produce json
// @Param pereval body models.PerevalResponse true "Pereval to submit (user, coords, level, activity_type id, images)"
// @Success 200 {object} models.SubmitDataResponse "Pereval created"
// @Failure 400 {object} models.SubmitDataResponse "Validation error"
// @Failure 500 {object} models.SubmitDataResponse "Internal error"
// @Router /api/submitData [post]
func NewSubmitDataCreateHandler(svc PerevalCreator, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer cleanupMultipart(r)

		id, err := create(w, r, svc, maxBytes)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				msg := validationMessage(verr)
				writeJSON(w, http.StatusBadRequest, models.SubmitDataResponse{
					Status:  http.StatusBadRequest,
					Message: &msg,
				})
				return
			}

			logger.Log.Errorw("failed to create pereval", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
			msg := err.Error()
			writeJSON(w, http.StatusInternalServerError, models.SubmitDataResponse{
				Status:  http.StatusInternalServerError,
				Message: &msg,
			})
			return
		}

		writeJSON(w, http.StatusOK, models.SubmitDataResponse{
			Status: http.StatusOK,
			ID:     &id,
		})
	}
}

func create(w http.ResponseWriter, r *http.Request, svc PerevalCreator, maxBytes int64) (int64, error) {
	data, uploads, err := readSubmission(w, r, maxBytes)
	if err != nil {
		return 0, err
	}
	return svc.Create(r.Context(), data, uploads)
}

// NewSubmitDataListHandler returns an HTTP handler that lists the perevals of one user.
// @Summary List perevals of a user
// @Description Returns an empty list unless user__email is given.
// @Tags submitData
// @Produce json
// @Param user__email query string false "Email of the pereval owner"
// @Success 200 {array} models.PerevalResponse "Perevals of the user"
// @Failure 500 {object} models.NotFoundResponse "Internal error"
// @Router /api/submitData [get]
func NewSubmitDataListHandler(svc PerevalLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("user__email")

		details, err := svc.ListByUserEmail(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("failed to list perevals", "request_id", middlewares.RequestIDFromContext(r.Context()), "email", email, "err", err)
			writeJSON(w, http.StatusInternalServerError, models.NotFoundResponse{Detail: err.Error()})
			return
		}

		resp := make([]models.PerevalResponse, 0, len(details))
		for i := range details {
			resp = append(resp, toPerevalResponse(r, &details[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
