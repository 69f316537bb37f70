package api

import (
	"time"

	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/render"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
	"github.com/rinilkunhiraman/portfolio-2026/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	contactHandler contactHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store *content.Store, renderer *render.Renderer, relay *services.Relay, meta seo.Builder, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		pageHandler:    newPageHandler(store, renderer, meta, startupTime),
		contactHandler: newContactHandler(store, renderer, relay),
	}
}
