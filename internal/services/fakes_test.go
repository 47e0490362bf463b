package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/providers"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]string
	errs    map[string]error
	failAll error
	delay   time.Duration
}

func (f *fakeSearcher) SearchImages(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.failAll != nil {
		return nil, f.failAll
	}
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls []string
	texts map[string]string
	errs  map[string]error
}

func (f *fakeGenerator) GenerateIntroduction(ctx context.Context, locationName, lang string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, locationName)
	f.mu.Unlock()
	if err, ok := f.errs[locationName]; ok {
		return "", err
	}
	if text, ok := f.texts[locationName]; ok {
		return text, nil
	}
	return "intro for " + locationName, nil
}

type fakeMapper struct {
	mu          sync.Mutex
	unavailable bool
	coords      map[string]providers.Coordinate
	failQueries map[string]bool
	routeCalls  [][]providers.Coordinate
	routeErr    error
	suggestions []providers.PlaceSuggestion
}

func (f *fakeMapper) Available() bool { return !f.unavailable }

func (f *fakeMapper) Geocode(ctx context.Context, placeIDOrName string) (providers.Coordinate, error) {
	if f.failQueries[placeIDOrName] {
		return providers.Coordinate{}, fmt.Errorf("geocode failed for %s", placeIDOrName)
	}
	coord, ok := f.coords[placeIDOrName]
	if !ok {
		return providers.Coordinate{}, fmt.Errorf("no result for %s", placeIDOrName)
	}
	return coord, nil
}

func (f *fakeMapper) Suggest(ctx context.Context, partial string) ([]providers.PlaceSuggestion, error) {
	return f.suggestions, nil
}

func (f *fakeMapper) Route(ctx context.Context, points []providers.Coordinate) (*providers.Route, error) {
	f.mu.Lock()
	f.routeCalls = append(f.routeCalls, points)
	f.mu.Unlock()
	if f.routeErr != nil {
		return nil, f.routeErr
	}
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lng, p.Lat})
	}
	return &providers.Route{Coordinates: coords, DistanceMeters: 1000, DurationSeconds: 600}, nil
}

func draftWithNames(names ...string) trip_models.TripData {
	draft := trip_models.NewDraft()
	draft = trip_models.SetLocationField(draft, 0, 0, trip_models.FieldName, names[0])
	for _, name := range names[1:] {
		draft = trip_models.AddLocation(draft, 0)
		last := len(draft.Days[0].Locations) - 1
		draft = trip_models.SetLocationField(draft, 0, last, trip_models.FieldName, name)
	}
	return draft
}
