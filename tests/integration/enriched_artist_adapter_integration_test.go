//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muscarelle/collection-enrichment/internal/adapters/database"
	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
)

const enrichedArtistsSchema = `
CREATE TABLE IF NOT EXISTS enriched_artists (
	id UUID PRIMARY KEY,
	artist_name TEXT NOT NULL UNIQUE,
	external_id TEXT,
	gender TEXT NOT NULL,
	heritage TEXT NOT NULL,
	birth_date TEXT,
	death_date TEXT,
	nationality_label TEXT,
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
	source TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

func TestEnrichedArtistAdapterRoundTrip(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()

	ctx := context.Background()
	_, err := client.DB().ExecContext(ctx, enrichedArtistsSchema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = client.DB().ExecContext(ctx, `DELETE FROM enriched_artists WHERE source = 'integration-test'`)
	})

	adapter := database.NewEnrichedArtistAdapter(client)

	artist := &entities.EnrichedArtist{
		ArtistName: "Integration Picasso",
		ExternalID: "Q5593",
		Gender:     entities.GenderMale,
		Heritage:   entities.HeritageEuropean,
		Confidence: 0.8,
		Source:     "integration-test",
	}

	require.NoError(t, adapter.Upsert(ctx, artist))
	firstID := artist.ID
	require.NotEmpty(t, firstID)

	got, err := adapter.GetByArtistName(ctx, "Integration Picasso")
	require.NoError(t, err)
	assert.Equal(t, entities.GenderMale, got.Gender)
	assert.Equal(t, entities.HeritageEuropean, got.Heritage)
	assert.Equal(t, 0.8, got.Confidence)

	// A second upsert for the same name updates in place.
	artist.ID = ""
	artist.Gender = entities.GenderUnknown
	require.NoError(t, adapter.Upsert(ctx, artist))

	got, err = adapter.GetByArtistName(ctx, "Integration Picasso")
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID, "conflict update must keep the original row")
	assert.Equal(t, entities.GenderUnknown, got.Gender)

	list, err := adapter.List(ctx, repositories.EnrichedArtistFilter{Heritage: string(entities.HeritageEuropean)})
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}
