package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	apperrors "github.com/muscarelle/collection-enrichment/pkg/errors"
)

// EnrichedArtistAdapter implements EnrichedArtistRepository on PostgreSQL.
type EnrichedArtistAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewEnrichedArtistAdapter creates a new adapter.
func NewEnrichedArtistAdapter(client *postgres.Client) repositories.EnrichedArtistRepository {
	return &EnrichedArtistAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByArtistName retrieves enrichment output for one canonical artist name.
func (a *EnrichedArtistAdapter) GetByArtistName(ctx context.Context, artistName string) (*entities.EnrichedArtist, error) {
	query, args, err := a.db.Select(
		"id",
		"artist_name",
		"external_id",
		"gender",
		"heritage",
		"birth_date",
		"death_date",
		"nationality_label",
		"confidence",
		"source",
		"created_at",
		"updated_at",
	).
		From("enriched_artists").
		Where(goqu.Ex{"artist_name": artistName}).
		Prepared(true).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build enriched artist query", err)
	}

	artist, err := scanEnrichedArtist(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("enriched artist %q not found", artistName))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get enriched artist", err)
	}

	return artist, nil
}

// List retrieves enrichment records, optionally filtered by category.
func (a *EnrichedArtistAdapter) List(ctx context.Context, filter repositories.EnrichedArtistFilter) ([]*entities.EnrichedArtist, error) {
	ds := a.db.Select(
		"id",
		"artist_name",
		"external_id",
		"gender",
		"heritage",
		"birth_date",
		"death_date",
		"nationality_label",
		"confidence",
		"source",
		"created_at",
		"updated_at",
	).
		From("enriched_artists").
		Order(goqu.I("artist_name").Asc())

	if filter.Gender != "" {
		ds = ds.Where(goqu.Ex{"gender": filter.Gender})
	}
	if filter.Heritage != "" {
		ds = ds.Where(goqu.Ex{"heritage": filter.Heritage})
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build enriched artist list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list enriched artists", err)
	}
	defer rows.Close()

	artists := make([]*entities.EnrichedArtist, 0)
	for rows.Next() {
		artist, err := scanEnrichedArtist(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan enriched artist", err)
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate enriched artists", err)
	}

	return artists, nil
}

// Upsert inserts or replaces the enrichment record for an artist, keyed by
// canonical name. Identity and timestamps are assigned here so re-running
// enrichment stays idempotent at the pipeline level.
func (a *EnrichedArtistAdapter) Upsert(ctx context.Context, artist *entities.EnrichedArtist) error {
	if artist == nil {
		return apperrors.NewValidationError("enriched artist is required")
	}
	if artist.ArtistName == "" {
		return apperrors.NewValidationError("artist name is required")
	}
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	now := time.Now()
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = now
	}
	artist.UpdatedAt = now

	query := `
		INSERT INTO enriched_artists
			(id, artist_name, external_id, gender, heritage, birth_date, death_date, nationality_label, confidence, source, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (artist_name)
		DO UPDATE SET
			external_id = EXCLUDED.external_id,
			gender = EXCLUDED.gender,
			heritage = EXCLUDED.heritage,
			birth_date = EXCLUDED.birth_date,
			death_date = EXCLUDED.death_date,
			nationality_label = EXCLUDED.nationality_label,
			confidence = EXCLUDED.confidence,
			source = EXCLUDED.source,
			updated_at = EXCLUDED.updated_at
	`

	_, err := a.client.DB().ExecContext(
		ctx,
		query,
		artist.ID,
		artist.ArtistName,
		artist.ExternalID,
		string(artist.Gender),
		string(artist.Heritage),
		artist.BirthDate,
		artist.DeathDate,
		artist.NationalityLabel,
		artist.Confidence,
		artist.Source,
		artist.CreatedAt,
		artist.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewInternalError("failed to upsert enriched artist", err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnrichedArtist(row rowScanner) (*entities.EnrichedArtist, error) {
	var externalID, birthDate, deathDate, nationalityLabel, source sql.NullString
	artist := &entities.EnrichedArtist{}

	err := row.Scan(
		&artist.ID,
		&artist.ArtistName,
		&externalID,
		&artist.Gender,
		&artist.Heritage,
		&birthDate,
		&deathDate,
		&nationalityLabel,
		&artist.Confidence,
		&source,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	artist.ExternalID = externalID.String
	artist.BirthDate = birthDate.String
	artist.DeathDate = deathDate.String
	artist.NationalityLabel = nationalityLabel.String
	artist.Source = source.String

	return artist, nil
}
