package repositories

import (
	"context"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
)

// EnrichedArtistFilter narrows List results.
type EnrichedArtistFilter struct {
	Gender   string
	Heritage string
	Limit    int
	Offset   int
}

// EnrichedArtistRepository defines the interface for the enrichment output table.
type EnrichedArtistRepository interface {
	GetByArtistName(ctx context.Context, artistName string) (*entities.EnrichedArtist, error)
	List(ctx context.Context, filter EnrichedArtistFilter) ([]*entities.EnrichedArtist, error)
	Upsert(ctx context.Context, artist *entities.EnrichedArtist) error
}
