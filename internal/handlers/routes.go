package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PerevalService is everything the submitData routes need from the service layer.
type PerevalService interface {
	PerevalCreator
	PerevalLister
	PerevalGetter
	PerevalUpdater
}

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Routes returns the route table of the API.
func Routes(svc PerevalService, media MediaReader, maxBytes int64) []Route {
	update := NewSubmitDataUpdateHandler(svc, maxBytes)

	return []Route{
		{Method: http.MethodPost, Pattern: "/api/submitData", Handler: NewSubmitDataCreateHandler(svc, maxBytes)},
		{Method: http.MethodGet, Pattern: "/api/submitData", Handler: NewSubmitDataListHandler(svc)},
		{Method: http.MethodGet, Pattern: "/api/submitData/{id}", Handler: NewSubmitDataDetailHandler(svc)},
		{Method: http.MethodPatch, Pattern: "/api/submitData/{id}", Handler: update},
		{Method: http.MethodPut, Pattern: "/api/submitData/{id}", Handler: update},
		{Method: http.MethodGet, Pattern: "/media/*", Handler: NewMediaHandler(media)},
	}
}

// Mount registers the routes on r.
func Mount(r chi.Router, routes []Route) {
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, route.Handler)
	}
}
