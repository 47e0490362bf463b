package response_models

type MarkerResponse struct {
	Label string  `json:"label"`
	Title string  `json:"title"`
	Time  string  `json:"time"`
	Day   int     `json:"day"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

type RouteResponse struct {
	Coordinates     [][]float64 `json:"coordinates"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
}

// MapViewResponse is one rebuilt map pass. Available false means the mapping
// provider is not configured and the map renders nothing.
type MapViewResponse struct {
	Available bool             `json:"available"`
	Day       int              `json:"day,omitempty"`
	Markers   []MarkerResponse `json:"markers"`
	Bounds    *BoundsResponse  `json:"bounds,omitempty"`
	Route     *RouteResponse   `json:"route,omitempty"`
}

type LocationDetailResponse struct {
	Name         string `json:"name"`
	Time         string `json:"time"`
	Image        string `json:"image,omitempty"`
	Introduction string `json:"introduction,omitempty"`
}
