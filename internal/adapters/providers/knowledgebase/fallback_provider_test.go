package knowledgebase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
)

// stubProvider returns a fixed outcome and counts calls.
type stubProvider struct {
	match *providers.ExternalMatch
	err   error
	calls int
}

func (s *stubProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	s.calls++
	return s.match, s.err
}

func TestFallbackProviderPrimaryMatchShortCircuits(t *testing.T) {
	primary := &stubProvider{match: &providers.ExternalMatch{ExternalID: "Q5593", Source: SourceWikidata}}
	secondary := &stubProvider{match: &providers.ExternalMatch{ExternalID: "27066304", Source: SourceVIAF}}
	provider := NewFallbackProvider(primary, secondary, zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "Pablo Picasso", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Q5593", match.ExternalID)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackProviderConsultsSecondaryOnMiss(t *testing.T) {
	primary := &stubProvider{}
	secondary := &stubProvider{match: &providers.ExternalMatch{ExternalID: "27066304", Source: SourceVIAF}}
	provider := NewFallbackProvider(primary, secondary, zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "Mary Cassatt", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, SourceVIAF, match.Source)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackProviderPrimaryErrorNotMasked(t *testing.T) {
	primary := &stubProvider{err: errors.New("endpoint unavailable")}
	secondary := &stubProvider{match: &providers.ExternalMatch{ExternalID: "27066304", Source: SourceVIAF}}
	provider := NewFallbackProvider(primary, secondary, zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "Pablo Picasso", nil, nil)
	require.Error(t, err)
	assert.Nil(t, match)
	assert.Equal(t, 0, secondary.calls)
}

func TestMockProviderLookup(t *testing.T) {
	provider := NewMockProvider()

	match, err := provider.LookupArtist(context.Background(), "Pablo Picasso", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Q5593", match.ExternalID)
	assert.Equal(t, "Q6581097", match.GenderCode)

	match, err = provider.LookupArtist(context.Background(), "Unknown Artist", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, match)

	provider.Add("Berthe Morisot", providers.ExternalMatch{ExternalID: "Q105320", GenderCode: "Q6581072"})
	match, err = provider.LookupArtist(context.Background(), "berthe morisot", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "Q105320", match.ExternalID)
}
