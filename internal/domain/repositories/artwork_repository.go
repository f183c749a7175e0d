package repositories

import (
	"context"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
)

// ArtworkFilter narrows List results.
type ArtworkFilter struct {
	Department string
	ArtistName string
	Limit      int
	Offset     int
}

// ArtworkRepository defines the interface for the museum catalog.
type ArtworkRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Artwork, error)
	List(ctx context.Context, filter ArtworkFilter) ([]*entities.Artwork, error)

	// ListWithEnrichment joins catalog records with enrichment fields,
	// degrading to Unknown categories for artists not yet enriched.
	ListWithEnrichment(ctx context.Context, filter ArtworkFilter) ([]*entities.EnrichedArtwork, error)

	// ListDistinctArtists returns the enrichment roster: every distinct
	// non-empty artist name in the catalog, in name order.
	ListDistinctArtists(ctx context.Context) ([]entities.ArtistRecord, error)

	// CountByArtist returns the number of catalog records per artist name.
	CountByArtist(ctx context.Context) (map[string]int, error)

	Create(ctx context.Context, artwork *entities.Artwork) error
}
