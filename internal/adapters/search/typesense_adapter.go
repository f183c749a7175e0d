package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/muscarelle/collection-enrichment/internal/domain/entities"
	"github.com/muscarelle/collection-enrichment/internal/domain/repositories"
	tsclient "github.com/muscarelle/collection-enrichment/internal/infrastructure/clients/typesense"
)

const collectionName = tsclient.ArtistsCollection

// TypesenseAdapter implements artist search using Typesense.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.ArtistSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter.
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the artists collection exists.
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil // collection exists
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "gender", Type: "string", Facet: pointer.True()},
			{Name: "heritage", Type: "string", Facet: pointer.True()},
			{Name: "confidence", Type: "float", Facet: pointer.True()},
			{Name: "external_id", Type: "string", Optional: pointer.True()},
			{Name: "artwork_count", Type: "int32"},
			{Name: "enriched_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("enriched_at"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index upserts an enriched artist into the search index.
func (a *TypesenseAdapter) Index(ctx context.Context, artist *entities.EnrichedArtist, artworkCount int) error {
	document := map[string]interface{}{
		"id":            artist.ID,
		"name":          artist.ArtistName,
		"gender":        string(artist.Gender),
		"heritage":      string(artist.Heritage),
		"confidence":    artist.Confidence,
		"external_id":   artist.ExternalID,
		"artwork_count": artworkCount,
		"enriched_at":   artist.UpdatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index artist: %w", err)
	}

	return nil
}

// Search queries the artist index by name with optional category facets.
func (a *TypesenseAdapter) Search(ctx context.Context, params repositories.ArtistSearchParams) ([]*entities.EnrichedArtist, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		query = "*"
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filters := []string{}
	if params.Gender != "" {
		filters = append(filters, fmt.Sprintf("gender:=%s", params.Gender))
	}
	if params.Heritage != "" {
		filters = append(filters, fmt.Sprintf("heritage:=%s", params.Heritage))
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name"),
		Page:    pointer.Int(params.Offset/limit + 1),
		PerPage: pointer.Int(limit),
	}
	if len(filters) > 0 {
		searchParams.FilterBy = pointer.String(strings.Join(filters, " && "))
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	artists := []*entities.EnrichedArtist{}
	if result.Hits == nil {
		return artists, nil
	}
	for _, hit := range *result.Hits {
		doc := *hit.Document

		artist := &entities.EnrichedArtist{}
		if val, ok := doc["id"].(string); ok {
			artist.ID = val
		}
		if val, ok := doc["name"].(string); ok {
			artist.ArtistName = val
		}
		if val, ok := doc["gender"].(string); ok {
			artist.Gender = entities.Gender(val)
		}
		if val, ok := doc["heritage"].(string); ok {
			artist.Heritage = entities.Heritage(val)
		}
		if val, ok := doc["confidence"].(float64); ok {
			artist.Confidence = val
		}
		if val, ok := doc["external_id"].(string); ok {
			artist.ExternalID = val
		}

		artists = append(artists, artist)
	}

	return artists, nil
}

// Delete removes an artist from the index.
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete artist from index: %w", err)
	}
	return nil
}
