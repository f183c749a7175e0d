package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "museum_collection", cfg.Database.Database)
	assert.Equal(t, "https://query.wikidata.org/sparql", cfg.Wikidata.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Wikidata.Timeout)
	assert.False(t, cfg.VIAF.Enabled)
	assert.Equal(t, "wikidata", cfg.Enrichment.Provider)
	assert.Equal(t, time.Second, cfg.Enrichment.RequestInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Enrichment.CacheTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "collection_test")
	t.Setenv("ENRICHMENT_PROVIDER", "mock")
	t.Setenv("ENRICHMENT_REQUEST_INTERVAL", "250ms")
	t.Setenv("VIAF_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "collection_test", cfg.Database.Database)
	assert.Equal(t, "mock", cfg.Enrichment.Provider)
	assert.Equal(t, 250*time.Millisecond, cfg.Enrichment.RequestInterval)
	assert.True(t, cfg.VIAF.Enabled)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "museum",
		Password: "secret",
		Database: "collection",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db port=5433 user=museum password=secret dbname=collection sslmode=require",
		cfg.DatabaseDSN(),
	)
}
