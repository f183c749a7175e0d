package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	"github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/postgres"
	apperrors "github.com/muscarelle/collection-enrichment/pkg/errors"
)

// ArtworkAdapter implements ArtworkRepository on PostgreSQL.
type ArtworkAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewArtworkAdapter creates a new adapter.
func NewArtworkAdapter(client *postgres.Client) repositories.ArtworkRepository {
	return &ArtworkAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByID retrieves a catalog record by ID.
func (a *ArtworkAdapter) GetByID(ctx context.Context, id string) (*entities.Artwork, error) {
	query, args, err := a.db.Select(
		"id",
		"title",
		"artist_name",
		"department",
		"acquisition_date",
		"created_at",
		"updated_at",
	).
		From("artworks").
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build artwork query", err)
	}

	artwork := &entities.Artwork{}
	var department sql.NullString
	var acquisitionDate sql.NullTime

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&artwork.ID,
		&artwork.Title,
		&artwork.ArtistName,
		&department,
		&acquisitionDate,
		&artwork.CreatedAt,
		&artwork.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("artwork with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get artwork", err)
	}

	artwork.Department = department.String
	artwork.AcquisitionDate = acquisitionDate.Time

	return artwork, nil
}

// List retrieves catalog records matching the filter.
func (a *ArtworkAdapter) List(ctx context.Context, filter repositories.ArtworkFilter) ([]*entities.Artwork, error) {
	ds := a.db.Select(
		"id",
		"title",
		"artist_name",
		"department",
		"acquisition_date",
		"created_at",
		"updated_at",
	).
		From("artworks").
		Order(goqu.I("title").Asc())

	if filter.Department != "" {
		ds = ds.Where(goqu.Ex{"department": filter.Department})
	}
	if filter.ArtistName != "" {
		ds = ds.Where(goqu.Ex{"artist_name": filter.ArtistName})
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build artwork list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list artworks", err)
	}
	defer rows.Close()

	artworks := make([]*entities.Artwork, 0)
	for rows.Next() {
		artwork := &entities.Artwork{}
		var department sql.NullString
		var acquisitionDate sql.NullTime
		if err := rows.Scan(
			&artwork.ID,
			&artwork.Title,
			&artwork.ArtistName,
			&department,
			&acquisitionDate,
			&artwork.CreatedAt,
			&artwork.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan artwork", err)
		}
		artwork.Department = department.String
		artwork.AcquisitionDate = acquisitionDate.Time
		artworks = append(artworks, artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate artworks", err)
	}

	return artworks, nil
}

// ListWithEnrichment joins the catalog against enrichment output. Artists
// without an enrichment record degrade to Unknown categories rather than
// dropping out of the result.
func (a *ArtworkAdapter) ListWithEnrichment(ctx context.Context, filter repositories.ArtworkFilter) ([]*entities.EnrichedArtwork, error) {
	ds := a.db.Select(
		goqu.I("a.id"),
		goqu.I("a.title"),
		goqu.I("a.artist_name"),
		goqu.I("a.department"),
		goqu.I("a.acquisition_date"),
		goqu.I("a.created_at"),
		goqu.I("a.updated_at"),
		goqu.COALESCE(goqu.I("e.gender"), "Unknown").As("gender"),
		goqu.COALESCE(goqu.I("e.heritage"), "Unknown").As("heritage"),
		goqu.COALESCE(goqu.I("e.confidence"), 0).As("confidence"),
	).
		From(goqu.T("artworks").As("a")).
		LeftJoin(
			goqu.T("enriched_artists").As("e"),
			goqu.On(goqu.I("a.artist_name").Eq(goqu.I("e.artist_name"))),
		).
		Order(goqu.I("a.title").Asc())

	if filter.Department != "" {
		ds = ds.Where(goqu.Ex{"a.department": filter.Department})
	}
	if filter.ArtistName != "" {
		ds = ds.Where(goqu.Ex{"a.artist_name": filter.ArtistName})
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build enriched artwork query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list enriched artworks", err)
	}
	defer rows.Close()

	results := make([]*entities.EnrichedArtwork, 0)
	for rows.Next() {
		item := &entities.EnrichedArtwork{}
		var department sql.NullString
		var acquisitionDate sql.NullTime
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.ArtistName,
			&department,
			&acquisitionDate,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Gender,
			&item.Heritage,
			&item.Confidence,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan enriched artwork", err)
		}
		item.Department = department.String
		item.AcquisitionDate = acquisitionDate.Time
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate enriched artworks", err)
	}

	return results, nil
}

// ListDistinctArtists returns the enrichment roster from the catalog.
func (a *ArtworkAdapter) ListDistinctArtists(ctx context.Context) ([]entities.ArtistRecord, error) {
	query, args, err := a.db.Select(goqu.DISTINCT("artist_name")).
		From("artworks").
		Where(goqu.C("artist_name").Neq("")).
		Order(goqu.I("artist_name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build roster query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list distinct artists", err)
	}
	defer rows.Close()

	roster := make([]entities.ArtistRecord, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.NewInternalError("failed to scan artist name", err)
		}
		roster = append(roster, entities.ArtistRecord{Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate artist names", err)
	}

	return roster, nil
}

// CountByArtist returns catalog record counts keyed by artist name.
func (a *ArtworkAdapter) CountByArtist(ctx context.Context) (map[string]int, error) {
	query, args, err := a.db.Select("artist_name", goqu.COUNT("*").As("n")).
		From("artworks").
		Where(goqu.C("artist_name").Neq("")).
		GroupBy("artist_name").
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build artist count query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count artworks by artist", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, apperrors.NewInternalError("failed to scan artist count", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate artist counts", err)
	}

	return counts, nil
}

// Create inserts a new catalog record.
func (a *ArtworkAdapter) Create(ctx context.Context, artwork *entities.Artwork) error {
	if artwork == nil {
		return apperrors.NewValidationError("artwork is required")
	}
	if artwork.Title == "" {
		return apperrors.NewValidationError("artwork title is required")
	}
	if artwork.ID == "" {
		artwork.ID = uuid.New().String()
	}
	now := time.Now()
	if artwork.CreatedAt.IsZero() {
		artwork.CreatedAt = now
	}
	artwork.UpdatedAt = now

	query, args, err := a.db.Insert("artworks").Rows(goqu.Record{
		"id":               artwork.ID,
		"title":            artwork.Title,
		"artist_name":      artwork.ArtistName,
		"department":       artwork.Department,
		"acquisition_date": artwork.AcquisitionDate,
		"created_at":       artwork.CreatedAt,
		"updated_at":       artwork.UpdatedAt,
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build artwork insert", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create artwork", err)
	}

	return nil
}
