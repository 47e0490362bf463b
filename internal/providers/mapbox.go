package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	mem "tripdoc/pkg/memcache"
	"tripdoc/pkg/utils"
)

// MapboxClient implements Mapper against the Mapbox Geocoding and Directions
// APIs. An empty access token makes the client report unavailable instead of
// failing at construction, so the map step can degrade to a no-op.
type MapboxClient struct {
	HTTP        *http.Client
	AccessToken string
	Cache       mem.GeocodeCache
	DefaultTTL  time.Duration
	Profile     string // "driving"
	BaseURL     string
}

func NewMapboxClient(accessToken string, cache mem.GeocodeCache) *MapboxClient {
	return &MapboxClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: accessToken,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		Profile:     "driving",
		BaseURL:     "https://api.mapbox.com",
	}
}

func (c *MapboxClient) Available() bool {
	return c.AccessToken != ""
}

func (c *MapboxClient) Geocode(ctx context.Context, placeIDOrName string) (Coordinate, error) {
	if !c.Available() {
		return Coordinate{}, utils.ErrMappingUnavailable
	}
	query := strings.TrimSpace(placeIDOrName)
	if query == "" {
		return Coordinate{}, fmt.Errorf("empty geocode query")
	}

	if c.Cache != nil {
		if lat, lng, ok := c.Cache.Get(query); ok {
			return Coordinate{Lat: lat, Lng: lng}, nil
		}
	}

	features, err := c.forwardGeocode(ctx, query, 1, false)
	if err != nil {
		return Coordinate{}, err
	}
	if len(features) == 0 {
		return Coordinate{}, fmt.Errorf("no geocoding result for %q", query)
	}
	f := features[0]
	if len(f.Center) < 2 {
		return Coordinate{}, fmt.Errorf("geocoding result for %q has no center", query)
	}
	coord := Coordinate{Lat: f.Center[1], Lng: f.Center[0]}
	if c.Cache != nil {
		c.Cache.Set(query, coord.Lat, coord.Lng, c.DefaultTTL)
	}
	return coord, nil
}

func (c *MapboxClient) Suggest(ctx context.Context, partial string) ([]PlaceSuggestion, error) {
	if !c.Available() {
		return []PlaceSuggestion{}, nil
	}
	if strings.TrimSpace(partial) == "" {
		return []PlaceSuggestion{}, nil
	}

	features, err := c.forwardGeocode(ctx, partial, 5, true)
	if err != nil {
		return nil, err
	}
	out := make([]PlaceSuggestion, 0, len(features))
	for _, f := range features {
		name := f.PlaceName
		if name == "" {
			name = f.Text
		}
		out = append(out, PlaceSuggestion{Name: name, PlaceID: f.ID})
	}
	return out, nil
}

func (c *MapboxClient) Route(ctx context.Context, points []Coordinate) (*Route, error) {
	if !c.Available() {
		return nil, utils.ErrMappingUnavailable
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("route needs at least two points")
	}

	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("mapbox base url: %w", err)
	}
	u.Path = fmt.Sprintf("/directions/v5/mapbox/%s/%s", c.Profile, strings.Join(coords, ";"))
	q := url.Values{}
	q.Set("geometries", "geojson")
	q.Set("overview", "full")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	var payload struct {
		Routes []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return nil, err
	}
	if len(payload.Routes) == 0 {
		return nil, fmt.Errorf("no route found")
	}
	r := payload.Routes[0]
	return &Route{
		Coordinates:     r.Geometry.Coordinates,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}

type mapboxFeature struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

func (c *MapboxClient) forwardGeocode(ctx context.Context, query string, limit int, autocomplete bool) ([]mapboxFeature, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("mapbox base url: %w", err)
	}
	u.Path = fmt.Sprintf("/geocoding/v5/mapbox.places/%s.json", url.PathEscape(query))
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	if autocomplete {
		q.Set("autocomplete", "true")
	}
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	var payload struct {
		Features []mapboxFeature `json:"features"`
	}
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return nil, err
	}
	return payload.Features, nil
}

func (c *MapboxClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("mapbox request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("mapbox http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("mapbox bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("mapbox decode: %w", err)
	}
	return nil
}
