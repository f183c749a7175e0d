package knowledgebase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
)

// FallbackProvider chains lookup sources: the primary is consulted first,
// and the secondary only when the primary has no candidate. A primary
// transport failure is returned as-is rather than masked by a weaker
// fallback match.
type FallbackProvider struct {
	primary   providers.ArtistLookupProvider
	secondary providers.ArtistLookupProvider
	logger    zerolog.Logger
}

// NewFallbackProvider creates a chained provider.
func NewFallbackProvider(primary, secondary providers.ArtistLookupProvider, logger zerolog.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("provider", "fallback").Logger(),
	}
}

// LookupArtist implements providers.ArtistLookupProvider.
func (p *FallbackProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	match, err := p.primary.LookupArtist(ctx, name, birthYear, deathYear)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return match, nil
	}

	p.logger.Debug().Str("artist", name).Msg("no primary candidate, trying fallback source")
	return p.secondary.LookupArtist(ctx, name, birthYear, deathYear)
}
