package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/muscarelle/collection-enrichment/internal/adapters/database"
	"github.com/muscarelle/collection-enrichment/internal/adapters/search"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/typesense"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/observability"
	"github.com/muscarelle/collection-enrichment/pkg/config"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete the existing artists collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	observability.InitLogger("collection-enrichment-indexer", os.Getenv("ENV"))
	logger := observability.GetLogger()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		parsed, err := time.ParseDuration(intervalValue)
		if err != nil {
			logger.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if parsed <= 0 {
			logger.Fatal().Msg("interval must be greater than zero")
		}
		interval = parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, reset); err != nil {
			logger.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		logger.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			logger.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, reset bool) error {
	logger := observability.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	enrichedRepo := database.NewEnrichedArtistAdapter(pgClient)
	artworkRepo := database.NewArtworkAdapter(pgClient)

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset || os.Getenv("RESET_TYPESENSE") == "true" {
		logger.Info().Msg("deleting artists collection before reindex")
		if _, err := tsClient.Client().Collection(typesense.ArtistsCollection).Delete(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to delete collection")
		}
	}

	searchRepo := search.NewTypesenseAdapter(tsClient)
	if err := searchRepo.InitSchema(ctx); err != nil {
		return err
	}

	artists, err := enrichedRepo.List(ctx, repositories.EnrichedArtistFilter{})
	if err != nil {
		return err
	}

	counts, err := artworkRepo.CountByArtist(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load artwork counts, indexing with zero counts")
		counts = map[string]int{}
	}

	logger.Info().Int("artists", len(artists)).Msg("indexing enriched artists")

	indexed := 0
	for _, artist := range artists {
		if artist == nil {
			continue
		}
		if err := searchRepo.Index(ctx, artist, counts[artist.ArtistName]); err != nil {
			logger.Warn().Err(err).Str("artist", artist.ArtistName).Msg("failed to index artist")
			continue
		}
		indexed++
	}

	logger.Info().Int("indexed", indexed).Msg("reindex finished")
	return nil
}
