package entities

import "time"

// Artwork is one museum catalog record. Catalog fields originate upstream of
// the enrichment pipeline; the pipeline only reads ArtistName from them.
type Artwork struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	ArtistName      string    `json:"artist_name" db:"artist_name"`
	Department      string    `json:"department" db:"department"`
	AcquisitionDate time.Time `json:"acquisition_date" db:"acquisition_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// EnrichedArtwork is a catalog record joined with the artist's enrichment
// fields, the shape the reporting layer consumes. Artworks whose artist has
// not been enriched carry Unknown categories and zero confidence.
type EnrichedArtwork struct {
	Artwork
	Gender     Gender   `json:"gender" db:"gender"`
	Heritage   Heritage `json:"heritage" db:"heritage"`
	Confidence float64  `json:"confidence" db:"confidence"`
}
