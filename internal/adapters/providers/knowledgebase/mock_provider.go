package knowledgebase

import (
	"context"
	"strings"

	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
)

// MockProvider serves lookups from an in-memory table, keyed by
// case-insensitive canonical name. It backs local development and tests
// where external endpoints are unavailable.
type MockProvider struct {
	matches map[string]providers.ExternalMatch
}

// NewMockProvider creates a provider with a small seed roster of
// well-known artists.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		matches: map[string]providers.ExternalMatch{
			"pablo picasso": {
				ExternalID:       "Q5593",
				GenderCode:       "Q6581097",
				NationalityCode:  "Q29",
				BirthDate:        "1881-10-25T00:00:00Z",
				DeathDate:        "1973-04-08T00:00:00Z",
				NationalityLabel: "Spain",
				Source:           "mock",
				Confidence:       wikidataMatchConfidence,
			},
			"mary cassatt": {
				ExternalID:       "Q173223",
				GenderCode:       "Q6581072",
				NationalityCode:  "Q30",
				BirthDate:        "1844-05-22T00:00:00Z",
				DeathDate:        "1926-06-14T00:00:00Z",
				NationalityLabel: "United States of America",
				Source:           "mock",
				Confidence:       wikidataMatchConfidence,
			},
			"katsushika hokusai": {
				ExternalID:       "Q5586",
				GenderCode:       "Q6581097",
				NationalityCode:  "Q17",
				BirthDate:        "1760-10-31T00:00:00Z",
				DeathDate:        "1849-05-10T00:00:00Z",
				NationalityLabel: "Japan",
				Source:           "mock",
				Confidence:       wikidataMatchConfidence,
			},
		},
	}
}

// Add registers a match for the given canonical name.
func (p *MockProvider) Add(name string, match providers.ExternalMatch) {
	p.matches[strings.ToLower(strings.TrimSpace(name))] = match
}

// LookupArtist implements providers.ArtistLookupProvider.
func (p *MockProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return nil, nil
	}
	if match, ok := p.matches[trimmed]; ok {
		out := match
		return &out, nil
	}
	return nil, nil
}
