// Package providers defines the external capabilities the wizard consumes.
// Each capability is an explicit interface so stages receive their providers
// by injection and tests can substitute doubles.
package providers

import "context"

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceSuggestion struct {
	Name    string `json:"name"`
	PlaceID string `json:"place_id"`
}

// Route is one driving route geometry. Coordinates are [lng, lat] pairs in
// travel order, the way mapping backends return GeoJSON LineStrings.
type Route struct {
	Coordinates     [][]float64 `json:"coordinates"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
}

// ImageSearcher returns candidate image URLs for a text query. Zero results
// is not an error; only transport or configuration failure is.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string) ([]string, error)
}

// IntroductionGenerator produces a brief travel introduction for one
// location name in the prose language selected for the session.
type IntroductionGenerator interface {
	GenerateIntroduction(ctx context.Context, locationName, lang string) (string, error)
}

// Mapper bundles the mapping capabilities the map step needs. Available
// reports whether the backing SDK/token is configured; callers must degrade
// to a no-op view when it is not.
type Mapper interface {
	Available() bool
	Geocode(ctx context.Context, placeIDOrName string) (Coordinate, error)
	Suggest(ctx context.Context, partial string) ([]PlaceSuggestion, error)
	Route(ctx context.Context, points []Coordinate) (*Route, error)
}
