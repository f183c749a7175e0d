package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
)

// countingProvider records the names it was asked to look up and serves
// matches/errors from fixed tables.
type countingProvider struct {
	mu      sync.Mutex
	lookups []string
	matches map[string]*providers.ExternalMatch
	errs    map[string]error
}

func newCountingProvider() *countingProvider {
	return &countingProvider{
		matches: map[string]*providers.ExternalMatch{},
		errs:    map[string]error{},
	}
}

func (p *countingProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lookups = append(p.lookups, name)
	if err, ok := p.errs[name]; ok {
		return nil, err
	}
	return p.matches[name], nil
}

// recordingRepo captures upserted artists.
type recordingRepo struct {
	upserts []*entities.EnrichedArtist
}

func (r *recordingRepo) GetByArtistName(ctx context.Context, artistName string) (*entities.EnrichedArtist, error) {
	return nil, nil
}

func (r *recordingRepo) List(ctx context.Context, filter repositories.EnrichedArtistFilter) ([]*entities.EnrichedArtist, error) {
	return nil, nil
}

func (r *recordingRepo) Upsert(ctx context.Context, artist *entities.EnrichedArtist) error {
	r.upserts = append(r.upserts, artist)
	return nil
}

func picassoMatch() *providers.ExternalMatch {
	return &providers.ExternalMatch{
		ExternalID:       "Q5593",
		GenderCode:       "Q6581097",
		NationalityCode:  "Q29",
		BirthDate:        "1881-10-25T00:00:00Z",
		DeathDate:        "1973-04-08T00:00:00Z",
		NationalityLabel: "Spain",
		Source:           "wikidata",
		Confidence:       0.8,
	}
}

func TestEnrichArtistMatched(t *testing.T) {
	provider := newCountingProvider()
	provider.matches["Pablo Picasso"] = picassoMatch()

	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	// "Last, First" input is normalized before lookup.
	artist, err := svc.EnrichArtist(context.Background(), entities.ArtistRecord{Name: "Picasso, Pablo"})
	require.NoError(t, err)
	require.NotNil(t, artist)

	assert.Equal(t, "Pablo Picasso", artist.ArtistName)
	assert.Equal(t, "Q5593", artist.ExternalID)
	assert.Equal(t, entities.GenderMale, artist.Gender)
	assert.Equal(t, entities.HeritageEuropean, artist.Heritage)
	assert.Equal(t, "Spain", artist.NationalityLabel)
	assert.Equal(t, 0.8, artist.Confidence)
	assert.Equal(t, "wikidata", artist.Source)
	assert.Equal(t, []string{"Pablo Picasso"}, provider.lookups)
}

func TestEnrichArtistNoMatch(t *testing.T) {
	provider := newCountingProvider()
	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	artist, err := svc.EnrichArtist(context.Background(), entities.ArtistRecord{Name: "Obscure Painter"})
	require.NoError(t, err)

	assert.Equal(t, "Obscure Painter", artist.ArtistName)
	assert.Equal(t, entities.GenderUnknown, artist.Gender)
	assert.Equal(t, entities.HeritageUnknown, artist.Heritage)
	assert.Equal(t, 0.0, artist.Confidence)
	assert.Empty(t, artist.ExternalID)
}

func TestEnrichArtistEmptyNameSkipsLookup(t *testing.T) {
	provider := newCountingProvider()
	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	artist, err := svc.EnrichArtist(context.Background(), entities.ArtistRecord{Name: "   "})
	require.NoError(t, err)

	assert.Equal(t, "", artist.ArtistName)
	assert.Equal(t, entities.GenderUnknown, artist.Gender)
	assert.Equal(t, entities.HeritageUnknown, artist.Heritage)
	assert.Empty(t, provider.lookups, "blank names must not reach the provider")
}

func TestEnrichRosterPreservesOrderAndSurvivesFailures(t *testing.T) {
	provider := newCountingProvider()
	provider.matches["Pablo Picasso"] = picassoMatch()
	provider.errs["Broken Lookup"] = errors.New("endpoint unavailable")

	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	roster := []entities.ArtistRecord{
		{Name: "Pablo Picasso"},
		{Name: "Broken Lookup"},
		{Name: "Obscure Painter"},
	}

	enriched, summary, err := svc.EnrichRoster(context.Background(), roster)
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	assert.Equal(t, "Pablo Picasso", enriched[0].ArtistName)
	assert.Equal(t, entities.GenderMale, enriched[0].Gender)

	// The failed lookup degrades to Unknown, it does not abort the run.
	assert.Equal(t, "Broken Lookup", enriched[1].ArtistName)
	assert.Equal(t, entities.GenderUnknown, enriched[1].Gender)
	assert.Equal(t, 0.0, enriched[1].Confidence)

	assert.Equal(t, "Obscure Painter", enriched[2].ArtistName)

	assert.Equal(t, 3, summary.RecordsProcessed)
	assert.Equal(t, 1, summary.Matched)
	assert.Equal(t, 1, summary.Unmatched)
	assert.Equal(t, 1, summary.LookupFailures)
}

func TestEnrichRosterIdempotent(t *testing.T) {
	provider := newCountingProvider()
	provider.matches["Mary Cassatt"] = &providers.ExternalMatch{
		ExternalID:      "Q173223",
		GenderCode:      "Q6581072",
		NationalityCode: "Q30",
		Source:          "wikidata",
		Confidence:      0.8,
	}

	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())
	roster := []entities.ArtistRecord{{Name: "Cassatt, Mary"}}

	first, _, err := svc.EnrichRoster(context.Background(), roster)
	require.NoError(t, err)
	second, _, err := svc.EnrichRoster(context.Background(), roster)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])
}

func TestEnrichRosterContextCancellation(t *testing.T) {
	provider := newCountingProvider()
	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	roster := []entities.ArtistRecord{{Name: "Pablo Picasso"}, {Name: "Mary Cassatt"}}
	enriched, summary, err := svc.EnrichRoster(ctx, roster)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, enriched)
	assert.Equal(t, 0, summary.RecordsProcessed)
}

func TestEnrichRosterPersistsWhenRepoConfigured(t *testing.T) {
	provider := newCountingProvider()
	provider.matches["Pablo Picasso"] = picassoMatch()

	repo := &recordingRepo{}
	svc := NewEnrichmentService(provider, NewCategoryMapper(), repo, 0, zerolog.Nop())

	roster := []entities.ArtistRecord{{Name: "Pablo Picasso"}, {Name: "Obscure Painter"}}
	_, _, err := svc.EnrichRoster(context.Background(), roster)
	require.NoError(t, err)

	// Both matches and Unknown records are persisted.
	require.Len(t, repo.upserts, 2)
	assert.Equal(t, "Pablo Picasso", repo.upserts[0].ArtistName)
	assert.Equal(t, "Obscure Painter", repo.upserts[1].ArtistName)
}

func TestEnrichRosterEmpty(t *testing.T) {
	provider := newCountingProvider()
	svc := NewEnrichmentService(provider, NewCategoryMapper(), nil, 0, zerolog.Nop())

	enriched, summary, err := svc.EnrichRoster(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, enriched)
	assert.Equal(t, 0, summary.RecordsProcessed)
	assert.Empty(t, provider.lookups)
}
