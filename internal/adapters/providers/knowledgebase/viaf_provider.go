package knowledgebase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/pkg/config"
	"github.com/muscarelle/collection-enrichment/pkg/names"
)

const (
	defaultVIAFEndpoint = "https://viaf.org/viaf/AutoSuggest"

	// AutoSuggest matches are name-only (no dates, no occupation), so
	// they score below an exact knowledge-base match.
	viafMatchConfidence = 0.5

	// SourceVIAF names the fallback authority file on match records.
	SourceVIAF = "viaf"
)

// VIAFProvider resolves artist names against the VIAF AutoSuggest API. It
// is a fallback source: results carry an authority identifier but no gender
// or nationality claims, so matches are returned with Unknown codes and a
// reduced confidence. Year hints are ignored because AutoSuggest does not
// expose dates.
type VIAFProvider struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewVIAFProvider creates a provider from configuration.
func NewVIAFProvider(cfg *config.VIAFConfig, userAgent string, logger zerolog.Logger) *VIAFProvider {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultVIAFEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	return &VIAFProvider{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("provider", SourceVIAF).Logger(),
	}
}

// NewVIAFProviderWithOptions allows overriding the endpoint and HTTP client
// (used for tests).
func NewVIAFProviderWithOptions(endpoint string, httpClient *http.Client, logger zerolog.Logger) *VIAFProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &VIAFProvider{
		endpoint:   endpoint,
		userAgent:  defaultUserAgent,
		httpClient: httpClient,
		logger:     logger.With().Str("provider", SourceVIAF).Logger(),
	}
}

// LookupArtist returns the first personal-name suggestion whose normalized
// term equals the normalized query, or (nil, nil) when none does.
func (p *VIAFProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	params := url.Values{"query": {trimmed}}
	reqURL := p.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build viaf request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viaf request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("viaf request returned status %d", resp.StatusCode)
	}

	var payload viafSuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode viaf response: %w", err)
	}

	want := strings.ToLower(names.Normalize(trimmed))
	for _, result := range payload.Result {
		if result.NameType != "personal" {
			continue
		}
		if strings.ToLower(names.Normalize(result.Term)) != want {
			continue
		}
		return &providers.ExternalMatch{
			ExternalID:      result.VIAFID,
			GenderCode:      "Unknown",
			NationalityCode: "Unknown",
			Source:          SourceVIAF,
			Confidence:      viafMatchConfidence,
		}, nil
	}

	return nil, nil
}

type viafSuggestResponse struct {
	Query  string       `json:"query"`
	Result []viafResult `json:"result"`
}

type viafResult struct {
	Term     string `json:"term"`
	NameType string `json:"nametype"`
	VIAFID   string `json:"viafid"`
}
