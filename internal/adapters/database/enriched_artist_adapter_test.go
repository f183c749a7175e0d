package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	apperrors "github.com/muscarelle/collection-enrichment/pkg/errors"
)

func setupMockAdapter(t *testing.T) (repositories.EnrichedArtistRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEnrichedArtistAdapter(postgres.NewClientWithDB(db)), mock
}

func enrichedArtistColumns() []string {
	return []string{
		"id", "artist_name", "external_id", "gender", "heritage",
		"birth_date", "death_date", "nationality_label", "confidence",
		"source", "created_at", "updated_at",
	}
}

func TestEnrichedArtistAdapterGetByArtistName(t *testing.T) {
	adapter, mock := setupMockAdapter(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "enriched_artists" WHERE .+`).
		WithArgs("Pablo Picasso").
		WillReturnRows(sqlmock.NewRows(enrichedArtistColumns()).AddRow(
			"id-1", "Pablo Picasso", "Q5593", "Male", "European",
			"1881-10-25T00:00:00Z", "1973-04-08T00:00:00Z", "Spain", 0.8,
			"wikidata", now, now,
		))

	artist, err := adapter.GetByArtistName(context.Background(), "Pablo Picasso")
	require.NoError(t, err)

	assert.Equal(t, "Q5593", artist.ExternalID)
	assert.Equal(t, entities.GenderMale, artist.Gender)
	assert.Equal(t, entities.HeritageEuropean, artist.Heritage)
	assert.Equal(t, 0.8, artist.Confidence)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrichedArtistAdapterGetByArtistNameNotFound(t *testing.T) {
	adapter, mock := setupMockAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "enriched_artists" WHERE .+`).
		WithArgs("Nobody").
		WillReturnRows(sqlmock.NewRows(enrichedArtistColumns()))

	artist, err := adapter.GetByArtistName(context.Background(), "Nobody")
	require.Error(t, err)
	assert.Nil(t, artist)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrichedArtistAdapterListWithFilter(t *testing.T) {
	adapter, mock := setupMockAdapter(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM "enriched_artists" WHERE .+"gender".+`).
		WillReturnRows(sqlmock.NewRows(enrichedArtistColumns()).
			AddRow("id-1", "Mary Cassatt", "Q173223", "Female", "North American",
				"", "", "United States of America", 0.8, "wikidata", now, now).
			AddRow("id-2", "Berthe Morisot", "Q105320", "Female", "European",
				"", "", "France", 0.8, "wikidata", now, now))

	artists, err := adapter.List(context.Background(), repositories.EnrichedArtistFilter{Gender: "Female"})
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, entities.GenderFemale, artists[0].Gender)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrichedArtistAdapterUpsertAssignsIdentity(t *testing.T) {
	adapter, mock := setupMockAdapter(t)

	mock.ExpectExec(`INSERT INTO enriched_artists`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	artist := &entities.EnrichedArtist{
		ArtistName: "Pablo Picasso",
		ExternalID: "Q5593",
		Gender:     entities.GenderMale,
		Heritage:   entities.HeritageEuropean,
		Confidence: 0.8,
		Source:     "wikidata",
	}

	err := adapter.Upsert(context.Background(), artist)
	require.NoError(t, err)

	// Identity and timestamps are assigned at persistence time.
	assert.NotEmpty(t, artist.ID)
	assert.False(t, artist.CreatedAt.IsZero())
	assert.False(t, artist.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrichedArtistAdapterUpsertValidation(t *testing.T) {
	adapter, _ := setupMockAdapter(t)

	err := adapter.Upsert(context.Background(), nil)
	require.Error(t, err)

	err = adapter.Upsert(context.Background(), &entities.EnrichedArtist{})
	require.Error(t, err)
}
