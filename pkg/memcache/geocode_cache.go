// pkg/memcache/geocode_cache.go
package mem

import (
	"sync"
	"time"
)

// GeocodeCache keeps resolved coordinates around so revisiting the map step
// does not re-bill every geocode. Keys are whatever the mapping provider was
// queried with (place ID or free-text name).
type GeocodeCache interface {
	Set(query string, lat, lng float64, ttl time.Duration)

	// Get returns the cached coordinate for query if not expired.
	Get(query string) (lat, lng float64, ok bool)
}

type geocodeEntry struct {
	lat       float64
	lng       float64
	expiresAt time.Time
}

type GeocodeResults struct {
	mu   sync.RWMutex
	data map[string]geocodeEntry
}

func NewGeocodeResults() *GeocodeResults {
	return &GeocodeResults{
		data: make(map[string]geocodeEntry),
	}
}

func (s *GeocodeResults) Set(query string, lat, lng float64, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[query] = geocodeEntry{
		lat:       lat,
		lng:       lng,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *GeocodeResults) Get(query string) (float64, float64, bool) {
	s.mu.RLock()
	e, ok := s.data[query]
	s.mu.RUnlock()
	if !ok {
		return 0, 0, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, query) // cleanup expired
		s.mu.Unlock()
		return 0, 0, false
	}
	return e.lat, e.lng, true
}
