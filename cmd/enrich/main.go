package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muscarelle/collection-enrichment/internal/adapters/cache"
	"github.com/muscarelle/collection-enrichment/internal/adapters/database"
	"github.com/muscarelle/collection-enrichment/internal/adapters/providers/knowledgebase"
	"github.com/muscarelle/collection-enrichment/internal/application/services"
	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/redis"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/observability"
	"github.com/muscarelle/collection-enrichment/pkg/config"
)

func main() {
	var artist string
	var birthYear int
	var deathYear int
	var dryRun bool
	var intervalFlag string

	flag.StringVar(&artist, "artist", "", "enrich a single artist name instead of the catalog roster")
	flag.IntVar(&birthYear, "birth-year", 0, "birth year constraint for -artist")
	flag.IntVar(&deathYear, "death-year", 0, "death year constraint for -artist")
	flag.BoolVar(&dryRun, "dry-run", false, "run the pipeline without persisting results")
	flag.StringVar(&intervalFlag, "interval", "", "override the request interval between lookups (e.g. 500ms, 2s)")
	flag.Parse()

	observability.InitLogger("collection-enrichment-cli", os.Getenv("ENV"))
	logger := observability.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if value := strings.TrimSpace(intervalFlag); value != "" {
		interval, err := time.ParseDuration(value)
		if err != nil {
			logger.Fatal().Err(err).Str("interval", value).Msg("invalid interval")
		}
		cfg.Enrichment.RequestInterval = interval
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	var cacheProvider providers.CacheProvider
	if redisClient, err := redis.NewClient(&cfg.Redis); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, lookups will not be cached")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var lookupProvider providers.ArtistLookupProvider
	if cfg.Enrichment.Provider == "mock" {
		lookupProvider = knowledgebase.NewMockProvider()
	} else {
		lookupProvider = knowledgebase.NewWikidataProvider(&cfg.Wikidata, cfg.Enrichment.CacheTTL, cacheProvider, *logger)
		if cfg.VIAF.Enabled {
			viaf := knowledgebase.NewVIAFProvider(&cfg.VIAF, cfg.Wikidata.UserAgent, *logger)
			lookupProvider = knowledgebase.NewFallbackProvider(lookupProvider, viaf, *logger)
		}
	}

	var enrichedRepo repositories.EnrichedArtistRepository
	if !dryRun {
		enrichedRepo = database.NewEnrichedArtistAdapter(pgClient)
	}

	svc := services.NewEnrichmentService(
		lookupProvider,
		services.NewCategoryMapper(),
		enrichedRepo,
		cfg.Enrichment.RequestInterval,
		*logger,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var roster []entities.ArtistRecord
	if artist != "" {
		record := entities.ArtistRecord{Name: artist}
		if birthYear > 0 {
			record.BirthYear = &birthYear
		}
		if deathYear > 0 {
			record.DeathYear = &deathYear
		}
		roster = []entities.ArtistRecord{record}
	} else {
		artworkRepo := database.NewArtworkAdapter(pgClient)
		roster, err = artworkRepo.ListDistinctArtists(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build roster from catalog")
		}
		logger.Info().Int("artists", len(roster)).Msg("roster loaded from catalog")
	}

	enriched, summary, err := svc.EnrichRoster(ctx, roster)
	if err != nil {
		logger.Error().Err(err).
			Int("completed", len(enriched)).
			Msg("enrichment run interrupted")
		os.Exit(1)
	}

	logger.Info().
		Int("records_processed", summary.RecordsProcessed).
		Int("matched", summary.Matched).
		Int("unmatched", summary.Unmatched).
		Int("lookup_failures", summary.LookupFailures).
		Int64("elapsed_ms", summary.ElapsedMS).
		Bool("dry_run", dryRun).
		Msg("enrichment run finished")
}
