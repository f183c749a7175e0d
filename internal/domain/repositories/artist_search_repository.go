package repositories

import (
	"context"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
)

// ArtistSearchParams narrows a name search over the artist index.
type ArtistSearchParams struct {
	Query    string
	Gender   string
	Heritage string
	Limit    int
	Offset   int
}

// ArtistSearchRepository defines the interface for the artist search index
// the reporting layer filters against.
type ArtistSearchRepository interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, artist *entities.EnrichedArtist, artworkCount int) error
	Search(ctx context.Context, params ArtistSearchParams) ([]*entities.EnrichedArtist, error)
	Delete(ctx context.Context, id string) error
}
