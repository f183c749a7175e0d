package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/pkg/names"
)

// EnrichmentSummary reports the outcome of one enrichment run.
type EnrichmentSummary struct {
	RecordsProcessed int   `json:"records_processed"`
	Matched          int   `json:"matched"`
	Unmatched        int   `json:"unmatched"`
	LookupFailures   int   `json:"lookup_failures"`
	ElapsedMS        int64 `json:"elapsed_ms"`
}

// EnrichmentService drives the artist enrichment pipeline: it normalizes
// each roster name, resolves it against a knowledge base under a shared
// rate limit, maps the returned codes onto categories, and optionally
// persists the results.
//
// Rosters are processed sequentially in input order. A lookup failure for
// one artist degrades that record to Unknown categories; it never aborts
// the run.
type EnrichmentService struct {
	provider providers.ArtistLookupProvider
	mapper   *CategoryMapper
	repo     repositories.EnrichedArtistRepository
	limiter  *rate.Limiter
	logger   zerolog.Logger
}

// NewEnrichmentService creates the pipeline orchestrator. The repository is
// optional: a nil repo runs the pipeline without persistence (dry runs).
// requestInterval spaces external lookups; zero disables the limiter.
func NewEnrichmentService(
	provider providers.ArtistLookupProvider,
	mapper *CategoryMapper,
	repo repositories.EnrichedArtistRepository,
	requestInterval time.Duration,
	logger zerolog.Logger,
) *EnrichmentService {
	if mapper == nil {
		mapper = NewCategoryMapper()
	}
	var limiter *rate.Limiter
	if requestInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(requestInterval), 1)
	}
	return &EnrichmentService{
		provider: provider,
		mapper:   mapper,
		repo:     repo,
		limiter:  limiter,
		logger:   logger.With().Str("service", "enrichment").Logger(),
	}
}

// EnrichRoster enriches every roster entry in order. The returned slice is
// the same length and order as the roster so callers can correlate by
// position. On context cancellation it returns the records completed so far
// together with the context error.
func (s *EnrichmentService) EnrichRoster(ctx context.Context, roster []entities.ArtistRecord) ([]*entities.EnrichedArtist, *EnrichmentSummary, error) {
	started := time.Now()
	summary := &EnrichmentSummary{}
	enriched := make([]*entities.EnrichedArtist, 0, len(roster))

	for _, record := range roster {
		if err := ctx.Err(); err != nil {
			summary.ElapsedMS = time.Since(started).Milliseconds()
			return enriched, summary, err
		}

		artist, lookupFailed, err := s.enrichOne(ctx, record)
		if err != nil {
			summary.ElapsedMS = time.Since(started).Milliseconds()
			return enriched, summary, err
		}

		summary.RecordsProcessed++
		switch {
		case lookupFailed:
			summary.LookupFailures++
		case artist.Confidence > 0:
			summary.Matched++
		default:
			summary.Unmatched++
		}

		if s.repo != nil {
			if err := s.repo.Upsert(ctx, artist); err != nil {
				summary.ElapsedMS = time.Since(started).Milliseconds()
				return enriched, summary, err
			}
		}

		enriched = append(enriched, artist)
	}

	summary.ElapsedMS = time.Since(started).Milliseconds()
	s.logger.Info().
		Int("records_processed", summary.RecordsProcessed).
		Int("matched", summary.Matched).
		Int("unmatched", summary.Unmatched).
		Int("lookup_failures", summary.LookupFailures).
		Int64("elapsed_ms", summary.ElapsedMS).
		Msg("enrichment run complete")

	return enriched, summary, nil
}

// EnrichArtist enriches a single roster entry. The only error it returns is
// context cancellation while waiting on the rate limiter; lookup failures
// degrade to an Unknown record.
func (s *EnrichmentService) EnrichArtist(ctx context.Context, record entities.ArtistRecord) (*entities.EnrichedArtist, error) {
	artist, _, err := s.enrichOne(ctx, record)
	return artist, err
}

func (s *EnrichmentService) enrichOne(ctx context.Context, record entities.ArtistRecord) (*entities.EnrichedArtist, bool, error) {
	canonical := names.Normalize(record.Name)

	artist := &entities.EnrichedArtist{
		ArtistName: canonical,
		Gender:     entities.GenderUnknown,
		Heritage:   entities.HeritageUnknown,
	}

	// Empty names short-circuit before the limiter so blank catalog rows
	// do not consume the external-request budget.
	if canonical == "" {
		return artist, false, nil
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, false, err
		}
	}

	match, err := s.provider.LookupArtist(ctx, canonical, record.BirthYear, record.DeathYear)
	if err != nil {
		s.logger.Warn().Err(err).Str("artist", canonical).Msg("artist lookup failed")
		return artist, true, nil
	}
	if match == nil {
		return artist, false, nil
	}

	artist.ExternalID = match.ExternalID
	artist.Gender = s.mapper.MapGender(match.GenderCode)
	artist.Heritage = s.mapper.MapHeritage(match.NationalityCode)
	artist.BirthDate = match.BirthDate
	artist.DeathDate = match.DeathDate
	artist.NationalityLabel = match.NationalityLabel
	artist.Confidence = match.Confidence
	artist.Source = match.Source

	return artist, false, nil
}
