package handlers

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/pereval-api/internal/models"
	"github.com/sbilibin2017/pereval-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDataDetailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockPerevalGetter)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "found",
			path: "/api/submitData/5",
			mockSetup: func(m *MockPerevalGetter) {
				m.EXPECT().Get(gomock.Any(), int64(5)).Return(&models.PerevalDetail{
					PerevalDB: models.PerevalDB{ID: 5, Title: "Pass", Status: models.StatusPending},
					Images:    []models.ImageDB{{ID: 1, Data: "perevals/x.jpg", Title: "North"}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp models.PerevalResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(5), resp.ID)
				assert.Equal(t, models.StatusPending, resp.Status)
				require.Len(t, resp.Images, 1)
				assert.Equal(t, "http://example.com/media/perevals/x.jpg", resp.Images[0].URL)
			},
		},
		{
			name: "not found",
			path: "/api/submitData/6",
			mockSetup: func(m *MockPerevalGetter) {
				m.EXPECT().Get(gomock.Any(), int64(6)).Return(nil, services.ErrPerevalNotFound)
			},
			expectedCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"detail":"Not found."}`, string(body))
			},
		},
		{
			name:         "non numeric id",
			path:         "/api/submitData/abc",
			mockSetup:    func(m *MockPerevalGetter) {},
			expectedCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"detail":"Not found."}`, string(body))
			},
		},
		{
			name: "internal error",
			path: "/api/submitData/7",
			mockSetup: func(m *MockPerevalGetter) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"detail":"database failure"}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPerevalGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/api/submitData/{id}", NewSubmitDataDetailHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestSubmitDataUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		mockSetup    func(m *MockPerevalUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "patch applied",
			method: http.MethodPatch,
			path:   "/api/submitData/5",
			body:   `{"title":"New title"}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), map[string]any{"title": "New title"}, gomock.Nil()).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"state":1,"message":null}`,
		},
		{
			name:   "put applied",
			method: http.MethodPut,
			path:   "/api/submitData/5",
			body:   `{"coords":{"height":1500}}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), map[string]any{"coords": map[string]any{"height": float64(1500)}}, gomock.Nil()).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"state":1,"message":null}`,
		},
		{
			name:   "status not new",
			method: http.MethodPatch,
			path:   "/api/submitData/5",
			body:   `{"title":"New title"}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), gomock.Any(), gomock.Nil()).
					Return(&services.RejectedError{Reason: "Cannot edit pereval with status 'accepted'"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"state":0,"message":"Cannot edit pereval with status 'accepted'"}`,
		},
		{
			name:   "validation error",
			method: http.MethodPatch,
			path:   "/api/submitData/5",
			body:   `{"coords":{"latitude":"north"}}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), gomock.Any(), gomock.Nil()).
					Return(services.NewValidationError("latitude", "A valid number is required."))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"state":0,"message":"Validation error: {\"latitude\":[\"A valid number is required.\"]}"}`,
		},
		{
			name:         "invalid json",
			method:       http.MethodPatch,
			path:         "/api/submitData/5",
			body:         `not json`,
			mockSetup:    func(m *MockPerevalUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"state":0,"message":"Validation error: {\"non_field_errors\":[\"JSON parse error - invalid character 'o' in literal null (expecting 'u')\"]}"}`,
		},
		{
			name:   "not found",
			method: http.MethodPatch,
			path:   "/api/submitData/99",
			body:   `{}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(99), map[string]any{}, gomock.Nil()).
					Return(services.ErrPerevalNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"state":0,"message":"Not found."}`,
		},
		{
			name:         "non numeric id",
			method:       http.MethodPatch,
			path:         "/api/submitData/abc",
			body:         `{}`,
			mockSetup:    func(m *MockPerevalUpdater) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"state":0,"message":"Not found."}`,
		},
		{
			name:   "internal error",
			method: http.MethodPatch,
			path:   "/api/submitData/5",
			body:   `{}`,
			mockSetup: func(m *MockPerevalUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(5), gomock.Any(), gomock.Nil()).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"state":0,"message":"database failure"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPerevalUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSubmitDataUpdateHandler(mockSvc, testMaxBytes)
			r := chi.NewRouter()
			r.Patch("/api/submitData/{id}", handler)
			r.Put("/api/submitData/{id}", handler)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestMediaURL(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		tls      bool
		proto    string
		expected string
	}{
		{name: "plain http", host: "api.local:8000", expected: "http://api.local:8000/media/perevals/a.png"},
		{name: "tls", host: "api.local", tls: true, expected: "https://api.local/media/perevals/a.png"},
		{name: "forwarded proto", host: "api.local", proto: "https", expected: "https://api.local/media/perevals/a.png"},
		{name: "forwarded proto list", host: "api.local", proto: "HTTPS, http", expected: "https://api.local/media/perevals/a.png"},
		{name: "no host", host: "", expected: "/media/perevals/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/submitData/1", nil)
			req.Host = tt.host
			if tt.tls {
				req.TLS = &tls.ConnectionState{}
			} else {
				req.TLS = nil
			}
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}

			assert.Equal(t, tt.expected, mediaURL(req, "perevals/a.png"))
		})
	}
}
