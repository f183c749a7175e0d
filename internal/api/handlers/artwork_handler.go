package handlers

import (
	"net/http"

	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	apperrors "github.com/muscarelle/collection-enrichment/pkg/errors"
)

// ArtworkHandler handles catalog requests
type ArtworkHandler struct {
	repo repositories.ArtworkRepository
}

// NewArtworkHandler creates a new artwork handler
func NewArtworkHandler(repo repositories.ArtworkRepository) *ArtworkHandler {
	return &ArtworkHandler{repo: repo}
}

// ListArtworks handles GET /api/v1/artworks
func (h *ArtworkHandler) ListArtworks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.ArtworkFilter{
		Department: query.Get("department"),
		ArtistName: query.Get("artist"),
		Limit:      parseIntParam(query.Get("limit"), 50),
		Offset:     parseIntParam(query.Get("offset"), 0),
	}

	// enriched=true joins catalog rows with the artist's categories.
	if query.Get("enriched") == "true" {
		artworks, err := h.repo.ListWithEnrichment(r.Context(), filter)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list artworks")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"artworks": artworks,
			"count":    len(artworks),
		})
		return
	}

	artworks, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list artworks")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"artworks": artworks,
		"count":    len(artworks),
	})
}

// GetArtwork handles GET /api/v1/artworks/{id}
func (h *ArtworkHandler) GetArtwork(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "artwork ID is required")
		return
	}

	artwork, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "artwork not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get artwork")
		return
	}

	respondWithJSON(w, http.StatusOK, artwork)
}
