package routes

import (
	"net/http"

	"github.com/muscarelle/collection-enrichment/internal/api/handlers"
	"github.com/muscarelle/collection-enrichment/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	artistHandler     *handlers.ArtistHandler
	artworkHandler    *handlers.ArtworkHandler
	enrichmentHandler *handlers.EnrichmentHandler

	cacheMiddleware *middleware.CacheMiddleware
}

// NewRouter creates a new router
func NewRouter(
	artistHandler *handlers.ArtistHandler,
	artworkHandler *handlers.ArtworkHandler,
	enrichmentHandler *handlers.EnrichmentHandler,
	cacheMiddleware *middleware.CacheMiddleware,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		artistHandler:     artistHandler,
		artworkHandler:    artworkHandler,
		enrichmentHandler: enrichmentHandler,
		cacheMiddleware:   cacheMiddleware,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Artist endpoints
	r.mux.HandleFunc("GET /api/v1/artists", r.artistHandler.ListArtists)
	r.mux.HandleFunc("GET /api/v1/artists/{name}", r.artistHandler.GetArtist)

	// Artwork endpoints
	r.mux.HandleFunc("GET /api/v1/artworks", r.artworkHandler.ListArtworks)
	r.mux.HandleFunc("GET /api/v1/artworks/{id}", r.artworkHandler.GetArtwork)

	// Enrichment run trigger
	if r.enrichmentHandler != nil {
		r.mux.HandleFunc("POST /api/v1/enrichment/runs", r.enrichmentHandler.TriggerRun)
	}

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
