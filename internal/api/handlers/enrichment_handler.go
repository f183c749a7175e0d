package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/muscarelle/collection-enrichment/internal/application/services"
	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
)

// EnrichmentHandler triggers enrichment runs over the catalog roster.
type EnrichmentHandler struct {
	service     *services.EnrichmentService
	artworkRepo repositories.ArtworkRepository
}

// NewEnrichmentHandler creates a new enrichment handler.
func NewEnrichmentHandler(service *services.EnrichmentService, artworkRepo repositories.ArtworkRepository) *EnrichmentHandler {
	return &EnrichmentHandler{
		service:     service,
		artworkRepo: artworkRepo,
	}
}

type enrichmentRunRequest struct {
	// Artists overrides the catalog roster when non-empty.
	Artists []entities.ArtistRecord `json:"artists,omitempty"`
}

// TriggerRun handles POST /api/v1/enrichment/runs. The run executes
// synchronously under the request context: external lookups are rate
// limited, so callers should size rosters (or timeouts) accordingly.
func (h *EnrichmentHandler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		respondWithError(w, http.StatusServiceUnavailable, "enrichment service not configured")
		return
	}

	var req enrichmentRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	roster := req.Artists
	if len(roster) == 0 {
		if h.artworkRepo == nil {
			respondWithError(w, http.StatusBadRequest, "no roster given and no catalog configured")
			return
		}
		var err error
		roster, err = h.artworkRepo.ListDistinctArtists(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to build roster from catalog")
			return
		}
	}

	enriched, summary, err := h.service.EnrichRoster(r.Context(), roster)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"summary": summary,
		"artists": enriched,
	})
}
