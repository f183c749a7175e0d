package knowledgebase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viafSuggestPayload = `{
  "query": "Mary Cassatt",
  "result": [
    {"term": "Cassatt (ship)", "nametype": "corporate", "viafid": "11111"},
    {"term": "Cassatt, Mary", "nametype": "personal", "viafid": "27066304"},
    {"term": "Cassatt, Alexander", "nametype": "personal", "viafid": "22222"}
  ]
}`

func newVIAFTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(viafSuggestPayload))
	}))
}

func TestVIAFProviderMatchesNormalizedPersonalName(t *testing.T) {
	srv := newVIAFTestServer(t)
	defer srv.Close()

	provider := NewVIAFProviderWithOptions(srv.URL, srv.Client(), zerolog.Nop())

	// "Cassatt, Mary" normalizes to "Mary Cassatt", so the second result
	// matches; the corporate entry ahead of it is skipped.
	match, err := provider.LookupArtist(context.Background(), "Mary Cassatt", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "27066304", match.ExternalID)
	assert.Equal(t, "Unknown", match.GenderCode)
	assert.Equal(t, "Unknown", match.NationalityCode)
	assert.Equal(t, SourceVIAF, match.Source)
	assert.Equal(t, 0.5, match.Confidence)
}

func TestVIAFProviderNoExactMatch(t *testing.T) {
	srv := newVIAFTestServer(t)
	defer srv.Close()

	provider := NewVIAFProviderWithOptions(srv.URL, srv.Client(), zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "Berthe Morisot", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestVIAFProviderEmptyName(t *testing.T) {
	provider := NewVIAFProviderWithOptions("http://localhost:0", nil, zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestVIAFProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	provider := NewVIAFProviderWithOptions(srv.URL, srv.Client(), zerolog.Nop())

	match, err := provider.LookupArtist(context.Background(), "Mary Cassatt", nil, nil)
	require.Error(t, err)
	assert.Nil(t, match)
}
