package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/rinilkunhiraman/portfolio-2026/render"
)

// setupRoutes wires the rendered pages behind the page cache and the JSON
// endpoints behind CORS. Pages are read-only; the only mutating surface is
// the contact submission endpoint.
func setupRoutes(r chi.Router, handlers *routeHandlers, cache *pageCache, acceptedOrigins []string) {
	// Rendered pages, cached for the revalidation window
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(cache.Middleware)

		r.Get("/", handlers.pageHandler.home())
		r.Get("/about", handlers.pageHandler.about())
		r.Get("/contact", handlers.pageHandler.contact())
		r.Get("/experience", handlers.pageHandler.experience())
		r.Get("/projects", handlers.pageHandler.projects())
		r.Get("/projects/{slug}", handlers.pageHandler.projectDetail())
		r.Get("/skills", handlers.pageHandler.skills())
		r.Get("/sitemap.xml", handlers.pageHandler.sitemap())
	})

	// JSON endpoints, never cached
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: acceptedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Post("/api/contact", handlers.contactHandler.submit())
		r.Get("/health", handlers.pageHandler.health())
	})

	// Embedded assets
	r.Handle("/static/*", render.Static())
	r.Get("/og-image-placeholder.svg", render.StaticFile("og-image-placeholder.svg"))

	r.NotFound(handlers.pageHandler.notFound())
}
