package knowledgebase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/pkg/config"
)

const (
	defaultWikidataEndpoint = "https://query.wikidata.org/sparql"
	defaultUserAgent        = "MuseumDataEnrichment/1.0 (collection-enrichment)"
	defaultHTTPTimeout      = 15 * time.Second
	defaultLookupCacheTTL   = 60 * 60 * 24 * 30

	// Exact-label matches get a fixed score. The endpoint may hold several
	// candidates under the same label; the first binding wins regardless,
	// so this is a coarse heuristic, not a calibrated probability.
	wikidataMatchConfidence = 0.8

	// SourceWikidata names the primary knowledge base on match records.
	SourceWikidata = "wikidata"
)

// WikidataProvider resolves artist names against the Wikidata SPARQL
// endpoint, constraining candidates to humans with a creative-practitioner
// occupation. Lookup results (including misses) are cached when a cache is
// configured, so repeat runs do not re-query the endpoint.
type WikidataProvider struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	cache      providers.CacheProvider
	cacheTTL   int
	logger     zerolog.Logger
}

// NewWikidataProvider creates a provider from configuration.
func NewWikidataProvider(cfg *config.WikidataConfig, cacheTTL time.Duration, cache providers.CacheProvider, logger zerolog.Logger) *WikidataProvider {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultWikidataEndpoint
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	ttl := int(cacheTTL / time.Second)
	if ttl <= 0 {
		ttl = defaultLookupCacheTTL
	}
	return &WikidataProvider{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		cacheTTL:   ttl,
		logger:     logger.With().Str("provider", SourceWikidata).Logger(),
	}
}

// NewWikidataProviderWithOptions allows overriding the endpoint and HTTP
// client (used for tests).
func NewWikidataProviderWithOptions(endpoint string, httpClient *http.Client, cache providers.CacheProvider, logger zerolog.Logger) *WikidataProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &WikidataProvider{
		endpoint:   endpoint,
		userAgent:  defaultUserAgent,
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   defaultLookupCacheTTL,
		logger:     logger.With().Str("provider", SourceWikidata).Logger(),
	}
}

// LookupArtist queries for a human with an exact English label match and a
// creative occupation. Year constraints are inclusive: candidates lacking
// the corresponding date are kept. Returns (nil, nil) when the endpoint has
// no candidate.
func (p *WikidataProvider) LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*providers.ExternalMatch, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	cacheKey := lookupCacheKey(SourceWikidata, trimmed, birthYear, deathYear)
	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var entry cachedLookup
			if err := json.Unmarshal(cached, &entry); err == nil {
				return entry.Match, nil
			}
		}
	}

	query := buildArtistQuery(trimmed, birthYear, deathYear)
	bindings, err := p.executeSPARQL(ctx, query)
	if err != nil {
		return nil, err
	}

	var match *providers.ExternalMatch
	if len(bindings) > 0 {
		// First binding only. Multiple candidates under the same label are
		// not ranked or disambiguated.
		match = bindingToMatch(bindings[0])
	}

	if p.cache != nil {
		if payload, err := json.Marshal(cachedLookup{Match: match}); err == nil {
			_ = p.cache.Set(ctx, cacheKey, payload, p.cacheTTL)
		}
	}

	return match, nil
}

func (p *WikidataProvider) executeSPARQL(ctx context.Context, query string) ([]sparqlBinding, error) {
	params := url.Values{
		"query":  {query},
		"format": {"json"},
	}
	reqURL := p.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sparql request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/sparql-results+json")

	p.logger.Debug().Msg("executing SPARQL query")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sparql request returned status %d", resp.StatusCode)
	}

	var payload sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode sparql response: %w", err)
	}

	return payload.Results.Bindings, nil
}

func bindingToMatch(b sparqlBinding) *providers.ExternalMatch {
	match := &providers.ExternalMatch{
		ExternalID:       lastPathSegment(b.Person.Value),
		GenderCode:       "Unknown",
		NationalityCode:  "Unknown",
		BirthDate:        b.BirthDate.Value,
		DeathDate:        b.DeathDate.Value,
		NationalityLabel: b.NationalityLabel.Value,
		Source:           SourceWikidata,
		Confidence:       wikidataMatchConfidence,
	}
	if b.Gender.Value != "" {
		match.GenderCode = lastPathSegment(b.Gender.Value)
	}
	if b.Nationality.Value != "" {
		match.NationalityCode = lastPathSegment(b.Nationality.Value)
	}
	return match
}

// buildArtistQuery constrains the subject to a human whose occupation
// intersects the creative-practitioner allow-list, with an exact English
// label match. Year filters keep candidates with no recorded date.
func buildArtistQuery(name string, birthYear, deathYear *int) string {
	var filters strings.Builder
	if birthYear != nil {
		fmt.Fprintf(&filters, "  FILTER(YEAR(?birthDate) = %d || !BOUND(?birthDate))\n", *birthYear)
	}
	if deathYear != nil {
		fmt.Fprintf(&filters, "  FILTER(YEAR(?deathDate) = %d || !BOUND(?deathDate))\n", *deathYear)
	}

	escaped := strings.ReplaceAll(name, `"`, `\"`)

	return fmt.Sprintf(`
SELECT DISTINCT ?person ?personLabel ?gender ?birthDate ?deathDate ?nationality ?nationalityLabel ?occupation
WHERE {
  ?person wdt:P31 wd:Q5 .
  ?person rdfs:label "%s"@en .

  OPTIONAL { ?person wdt:P21 ?gender . }
  OPTIONAL { ?person wdt:P569 ?birthDate . }
  OPTIONAL { ?person wdt:P570 ?deathDate . }
  OPTIONAL { ?person wdt:P27 ?nationality . }
  OPTIONAL { ?person wdt:P106 ?occupation . }

  { ?person wdt:P106 wd:Q1028181 . }
  UNION { ?person wdt:P106 wd:Q1281618 . }
  UNION { ?person wdt:P106 wd:Q33231 . }
  UNION { ?person wdt:P106 wd:Q483501 . }
  UNION { ?person wdt:P106 wd:Q15296811 . }

%s  SERVICE wikibase:label { bd:serviceParam wikibase:language "en" . }
}`, escaped, filters.String())
}

// lastPathSegment extracts the entity code from a knowledge-base URI,
// e.g. "http://www.wikidata.org/entity/Q5593" -> "Q5593".
func lastPathSegment(uri string) string {
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}

func lookupCacheKey(source, name string, birthYear, deathYear *int) string {
	raw := strings.ToLower(name)
	if birthYear != nil {
		raw += fmt.Sprintf("|b%d", *birthYear)
	}
	if deathYear != nil {
		raw += fmt.Sprintf("|d%d", *deathYear)
	}
	return "kb:v1:" + source + ":" + hashKey(raw)
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// cachedLookup wraps a lookup outcome so misses cache as an explicit null.
type cachedLookup struct {
	Match *providers.ExternalMatch `json:"match"`
}

type sparqlResponse struct {
	Results sparqlResults `json:"results"`
}

type sparqlResults struct {
	Bindings []sparqlBinding `json:"bindings"`
}

type sparqlBinding struct {
	Person           sparqlValue `json:"person"`
	Gender           sparqlValue `json:"gender"`
	BirthDate        sparqlValue `json:"birthDate"`
	DeathDate        sparqlValue `json:"deathDate"`
	Nationality      sparqlValue `json:"nationality"`
	NationalityLabel sparqlValue `json:"nationalityLabel"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
