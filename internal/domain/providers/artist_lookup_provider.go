package providers

import "context"

// ExternalMatch is the raw outcome of a knowledge-base lookup, before codes
// are mapped onto categories. Gender and nationality codes default to
// "Unknown" when the external record lacks them.
type ExternalMatch struct {
	// ExternalID is the knowledge-base identifier, e.g. a Wikidata QID
	ExternalID string

	// GenderCode and NationalityCode are external controlled-vocabulary
	// identifiers, not category values
	GenderCode      string
	NationalityCode string

	// BirthDate and DeathDate are the source's date strings, unparsed
	BirthDate string
	DeathDate string

	// NationalityLabel is the source's human-readable nationality, if any
	NationalityLabel string

	// Source names the knowledge base that produced the match
	Source string

	// Confidence is the source's heuristic match quality in [0,1]
	Confidence float64
}

// ArtistLookupProvider resolves a canonical artist name against an external
// knowledge base. Birth and death years, when given, constrain candidates
// inclusively: records without the corresponding date are never excluded.
//
// A (nil, nil) return means the source had no candidate for the name. An
// error means the lookup itself failed (transport, endpoint, decoding);
// callers treat both as "no match" and must never abort a batch over them.
// Implementations take the first candidate the source returns and do not
// disambiguate among multiple candidates.
type ArtistLookupProvider interface {
	LookupArtist(ctx context.Context, name string, birthYear, deathYear *int) (*ExternalMatch, error)
}
