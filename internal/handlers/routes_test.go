package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/storage"
	"github.com/stretchr/testify/assert"
)

type mockPerevalService struct {
	*MockPerevalCreator
	*MockPerevalLister
	*MockPerevalGetter
	*MockPerevalUpdater
}

func TestRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mockPerevalService{
		MockPerevalCreator: NewMockPerevalCreator(ctrl),
		MockPerevalLister:  NewMockPerevalLister(ctrl),
		MockPerevalGetter:  NewMockPerevalGetter(ctrl),
		MockPerevalUpdater: NewMockPerevalUpdater(ctrl),
	}
	media := NewMockMediaReader(ctrl)

	r := chi.NewRouter()
	Mount(r, Routes(svc, media, testMaxBytes))

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/submitData",
			body:   `{}`,
			mockSetup: func() {
				svc.MockPerevalCreator.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/submitData?user__email=a@b.c",
			mockSetup: func() {
				svc.MockPerevalLister.EXPECT().ListByUserEmail(gomock.Any(), "a@b.c").Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "detail",
			method: http.MethodGet,
			path:   "/api/submitData/1",
			mockSetup: func() {
				svc.MockPerevalGetter.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.PerevalDetail{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "patch",
			method: http.MethodPatch,
			path:   "/api/submitData/1",
			body:   `{}`,
			mockSetup: func() {
				svc.MockPerevalUpdater.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "put",
			method: http.MethodPut,
			path:   "/api/submitData/1",
			body:   `{}`,
			mockSetup: func() {
				svc.MockPerevalUpdater.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "media",
			method: http.MethodGet,
			path:   "/media/perevals/a.png",
			mockSetup: func() {
				media.EXPECT().Get(gomock.Any(), "perevals/a.png").Return(&storage.Object{
					Body: io.NopCloser(strings.NewReader("x")),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "delete is not allowed",
			method:       http.MethodDelete,
			path:         "/api/submitData/1",
			mockSetup:    func() {},
			expectedCode: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
