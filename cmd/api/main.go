package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muscarelle/collection-enrichment/internal/adapters/cache"
	"github.com/muscarelle/collection-enrichment/internal/adapters/database"
	"github.com/muscarelle/collection-enrichment/internal/adapters/providers/knowledgebase"
	"github.com/muscarelle/collection-enrichment/internal/adapters/search"
	"github.com/muscarelle/collection-enrichment/internal/api/handlers"
	"github.com/muscarelle/collection-enrichment/internal/api/middleware"
	"github.com/muscarelle/collection-enrichment/internal/api/routes"
	"github.com/muscarelle/collection-enrichment/internal/application/services"
	"github.com/muscarelle/collection-enrichment/internal/domain/providers"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/redis"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/typesense"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/observability"
	"github.com/muscarelle/collection-enrichment/pkg/config"
)

func main() {
	observability.InitLogger("collection-enrichment-api", os.Getenv("ENV"))
	logger := observability.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Redis is optional: without it the app runs uncached.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Typesense is optional: without it text search is disabled.
	var searchRepo repositories.ArtistSearchRepository
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		logger.Warn().Err(err).Msg("Typesense unavailable, text search disabled")
	} else {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("failed to initialize search schema")
		} else {
			searchRepo = adapter
		}
	}

	enrichedArtistRepo := database.NewEnrichedArtistAdapter(pgClient)
	artworkRepo := database.NewArtworkAdapter(pgClient)

	lookupProvider := buildLookupProvider(cfg, cacheProvider)
	enrichmentService := services.NewEnrichmentService(
		lookupProvider,
		services.NewCategoryMapper(),
		enrichedArtistRepo,
		cfg.Enrichment.RequestInterval,
		*logger,
	)

	artistHandler := handlers.NewArtistHandler(enrichedArtistRepo, searchRepo)
	artworkHandler := handlers.NewArtworkHandler(artworkRepo)
	enrichmentHandler := handlers.NewEnrichmentHandler(enrichmentService, artworkRepo)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(artistHandler, artworkHandler, enrichmentHandler, cacheMiddleware)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // enrichment runs are rate limited
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}

// buildLookupProvider selects the knowledge-base source from configuration,
// layering the VIAF fallback when enabled.
func buildLookupProvider(cfg *config.Config, cacheProvider providers.CacheProvider) providers.ArtistLookupProvider {
	logger := observability.GetLogger()

	if cfg.Enrichment.Provider == "mock" {
		logger.Info().Msg("using mock artist lookup provider")
		return knowledgebase.NewMockProvider()
	}

	var provider providers.ArtistLookupProvider = knowledgebase.NewWikidataProvider(
		&cfg.Wikidata,
		cfg.Enrichment.CacheTTL,
		cacheProvider,
		*logger,
	)

	if cfg.VIAF.Enabled {
		viaf := knowledgebase.NewVIAFProvider(&cfg.VIAF, cfg.Wikidata.UserAgent, *logger)
		provider = knowledgebase.NewFallbackProvider(provider, viaf, *logger)
		logger.Info().Msg("VIAF fallback enabled")
	}

	return provider
}
