package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"tripdoc/internal/models/response_models"
	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/providers"
	"tripdoc/pkg/utils"
)

type MapServiceInterface interface {
	// BuildView geocodes every location and assembles the marker overlay.
	// dayFilter > 0 restricts markers to that day and requests one driving
	// route through the day's stops in visiting order; 0 means all days.
	BuildView(ctx context.Context, draft trip_models.TripData, dayFilter int) (*response_models.MapViewResponse, error)

	// LocationDetail resolves a marker label like "2-3" back to its
	// location and the enrichment attached to its name.
	LocationDetail(draft trip_models.TripData, label string) (*response_models.LocationDetailResponse, error)

	Suggest(ctx context.Context, partial string) ([]providers.PlaceSuggestion, error)
}

type MapService struct {
	mapper providers.Mapper
}

func NewMapService(mapper providers.Mapper) MapServiceInterface {
	return &MapService{mapper: mapper}
}

type geocodeJob struct {
	dayIndex      int
	locationIndex int
	location      trip_models.TripLocation
}

func (s *MapService) BuildView(ctx context.Context, draft trip_models.TripData, dayFilter int) (*response_models.MapViewResponse, error) {
	view := &response_models.MapViewResponse{
		Available: s.mapper.Available(),
		Day:       dayFilter,
		Markers:   []response_models.MarkerResponse{},
	}
	if !view.Available {
		// Mapping SDK not configured: the map no-ops rather than failing.
		return view, nil
	}

	jobs := make([]geocodeJob, 0, draft.LocationCount())
	for dayIndex, day := range draft.Days {
		for locationIndex, location := range day.Locations {
			jobs = append(jobs, geocodeJob{dayIndex: dayIndex, locationIndex: locationIndex, location: location})
		}
	}

	// Geocodes are independent; each goroutine owns its slot, failures
	// leave the slot nil and only that marker is omitted.
	resolved := make([]*response_models.MarkerResponse, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job geocodeJob) {
			defer wg.Done()
			query := job.location.PlaceID
			if query == "" {
				query = job.location.Name
			}
			if strings.TrimSpace(query) == "" {
				return
			}
			coord, err := s.mapper.Geocode(ctx, query)
			if err != nil {
				log.Printf("Geocode failed for %q: %v", query, err)
				return
			}
			resolved[i] = &response_models.MarkerResponse{
				Label: fmt.Sprintf("%d-%d", job.dayIndex+1, job.locationIndex+1),
				Title: job.location.Name,
				Time:  job.location.Time,
				Day:   job.dayIndex + 1,
				Lat:   coord.Lat,
				Lng:   coord.Lng,
			}
		}(i, job)
	}
	wg.Wait()

	var routePoints []providers.Coordinate
	for _, marker := range resolved {
		if marker == nil {
			continue
		}
		if dayFilter > 0 && marker.Day != dayFilter {
			continue
		}
		view.Markers = append(view.Markers, *marker)
		extendBounds(view, marker.Lat, marker.Lng)
		if dayFilter > 0 {
			// resolved preserves visiting order within the day.
			routePoints = append(routePoints, providers.Coordinate{Lat: marker.Lat, Lng: marker.Lng})
		}
	}

	if dayFilter > 0 && len(routePoints) >= 2 {
		route, err := s.mapper.Route(ctx, routePoints)
		if err != nil {
			// A failed route leaves the markers standing.
			log.Printf("Route request failed for day %d: %v", dayFilter, err)
		} else {
			view.Route = &response_models.RouteResponse{
				Coordinates:     route.Coordinates,
				DistanceMeters:  route.DistanceMeters,
				DurationSeconds: route.DurationSeconds,
			}
		}
	}
	return view, nil
}

func extendBounds(view *response_models.MapViewResponse, lat, lng float64) {
	if view.Bounds == nil {
		view.Bounds = &response_models.BoundsResponse{MinLat: lat, MaxLat: lat, MinLng: lng, MaxLng: lng}
		return
	}
	b := view.Bounds
	if lat < b.MinLat {
		b.MinLat = lat
	}
	if lat > b.MaxLat {
		b.MaxLat = lat
	}
	if lng < b.MinLng {
		b.MinLng = lng
	}
	if lng > b.MaxLng {
		b.MaxLng = lng
	}
}

func (s *MapService) LocationDetail(draft trip_models.TripData, label string) (*response_models.LocationDetailResponse, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return nil, utils.ErrInvalidInput
	}
	dayNumber, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	locationNumber, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	location, ok := draft.Location(dayNumber-1, locationNumber-1)
	if !ok {
		return nil, utils.ErrLocationNotFound
	}
	return &response_models.LocationDetailResponse{
		Name:         location.Name,
		Time:         location.Time,
		Image:        draft.Images[location.Name],
		Introduction: draft.Introductions[location.Name],
	}, nil
}

func (s *MapService) Suggest(ctx context.Context, partial string) ([]providers.PlaceSuggestion, error) {
	suggestions, err := s.mapper.Suggest(ctx, partial)
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	if suggestions == nil {
		suggestions = []providers.PlaceSuggestion{}
	}
	return suggestions, nil
}
