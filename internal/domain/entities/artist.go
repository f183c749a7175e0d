package entities

import "time"

// Gender is the closed set of gender categories emitted by enrichment.
// Unknown is an explicit value, not an absence: it tells downstream consumers
// the artist was looked up and no classification was found.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-Binary"
	GenderUnknown   Gender = "Unknown"
)

// Heritage is the closed set of macro-region heritage categories.
type Heritage string

const (
	HeritageEuropean       Heritage = "European"
	HeritageNorthAmerican  Heritage = "North American"
	HeritageEastAsian      Heritage = "East Asian"
	HeritageSouthAsian     Heritage = "South Asian"
	HeritageSoutheastAsian Heritage = "Southeast Asian"
	HeritageMiddleEastern  Heritage = "Middle Eastern"
	HeritageAfrican        Heritage = "African"
	HeritageLatinAmerican  Heritage = "Latin American"
	HeritageUnknown        Heritage = "Unknown"
)

// ArtistRecord is one entry of an enrichment roster: a raw catalog name,
// possibly "Last, First" formatted, with optional life-year constraints.
// Identity is positional; the roster enforces no uniqueness.
type ArtistRecord struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year,omitempty"`
	DeathYear *int   `json:"death_year,omitempty"`
}

// EnrichedArtist is the enrichment output for one roster entry. Gender and
// Heritage always hold a closed enum value. Confidence reflects match quality
// (0 when no external record matched), not category correctness.
type EnrichedArtist struct {
	ID               string    `json:"id" db:"id"`
	ArtistName       string    `json:"artist_name" db:"artist_name"`
	ExternalID       string    `json:"external_id" db:"external_id"`
	Gender           Gender    `json:"gender" db:"gender"`
	Heritage         Heritage  `json:"heritage" db:"heritage"`
	BirthDate        string    `json:"birth_date,omitempty" db:"birth_date"`
	DeathDate        string    `json:"death_date,omitempty" db:"death_date"`
	NationalityLabel string    `json:"nationality_label,omitempty" db:"nationality_label"`
	Confidence       float64   `json:"confidence" db:"confidence"`
	Source           string    `json:"source,omitempty" db:"source"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
