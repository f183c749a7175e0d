package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	apperrors "github.com/muscarelle/collection-enrichment/pkg/errors"
	"github.com/muscarelle/collection-enrichment/pkg/names"
)

// ArtistHandler handles enriched-artist requests
type ArtistHandler struct {
	repo       repositories.EnrichedArtistRepository
	searchRepo repositories.ArtistSearchRepository
}

// NewArtistHandler creates a new artist handler. The search repository is
// optional; without it the q parameter is rejected.
func NewArtistHandler(repo repositories.EnrichedArtistRepository, searchRepo repositories.ArtistSearchRepository) *ArtistHandler {
	return &ArtistHandler{
		repo:       repo,
		searchRepo: searchRepo,
	}
}

// ListArtists handles GET /api/v1/artists
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := parseIntParam(query.Get("limit"), 50)
	offset := parseIntParam(query.Get("offset"), 0)

	// Free-text queries go through the search index when configured;
	// plain category filters hit the database directly.
	if q := query.Get("q"); q != "" {
		if h.searchRepo == nil {
			respondWithError(w, http.StatusBadRequest, "text search is not configured")
			return
		}
		artists, err := h.searchRepo.Search(r.Context(), repositories.ArtistSearchParams{
			Query:    q,
			Gender:   query.Get("gender"),
			Heritage: query.Get("heritage"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to search artists")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"artists": artists,
			"count":   len(artists),
		})
		return
	}

	artists, err := h.repo.List(r.Context(), repositories.EnrichedArtistFilter{
		Gender:   query.Get("gender"),
		Heritage: query.Get("heritage"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list artists")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"artists": artists,
		"count":   len(artists),
	})
}

// GetArtist handles GET /api/v1/artists/{name}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "artist name is required")
		return
	}

	// Lookups accept raw catalog spellings; the canonical form is the key.
	canonical := names.Normalize(name)
	artist, err := h.repo.GetByArtistName(r.Context(), canonical)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "artist not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get artist")
		return
	}

	respondWithJSON(w, http.StatusOK, artist)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
		return parsed
	}
	return fallback
}
