package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/Ishan3842/weather-dashboard/internal/weather"
)

var (
	// ErrNotFound is returned when no snapshot is available for a city.
	ErrNotFound = errors.New("no weather data for city")
)

// MemoryStore is a concurrency-safe in-memory registry of tracked cities
// and their fetched snapshots. Both live under one mutex so removal
// deletes the snapshot atomically with the registry entry and a late
// fetch completion can never resurrect a removed city.
type MemoryStore struct {
	mu sync.RWMutex

	// cities in insertion order, no duplicates
	cities []string

	// key: city name exactly as entered
	snapshots map[string]weather.CitySnapshot
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]weather.CitySnapshot),
	}
}

// AddCity appends a city to the registry. Blank names (empty after
// trimming whitespace) and names already present are ignored. Matching
// is an exact string comparison; no normalization is applied, so the
// name is stored verbatim.
func (s *MemoryStore) AddCity(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cities {
		if c == name {
			return false
		}
	}
	s.cities = append(s.cities, name)
	return true
}

// RemoveCity removes a city and its snapshot in one critical section.
// Removing an untracked city is a no-op.
func (s *MemoryStore) RemoveCity(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cities {
		if c == name {
			s.cities = append(s.cities[:i], s.cities[i+1:]...)
			break
		}
	}
	delete(s.snapshots, name)
}

// Cities returns a copy of the registry in insertion order.
func (s *MemoryStore) Cities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.cities))
	copy(out, s.cities)
	return out
}

// SaveSnapshot upserts the snapshot for a city, touching no other keys.
// If the city was removed while its fetch was in flight the write is
// dropped and false is returned.
func (s *MemoryStore) SaveSnapshot(name string, snapshot weather.CitySnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tracked := false
	for _, c := range s.cities {
		if c == name {
			tracked = true
			break
		}
	}
	if !tracked {
		return false
	}

	s.snapshots[name] = snapshot
	return true
}

// GetSnapshot returns the snapshot for a city.
func (s *MemoryStore) GetSnapshot(name string) (weather.CitySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[name]
	if !ok {
		return weather.CitySnapshot{}, ErrNotFound
	}
	return snap, nil
}

// View returns the registry and all snapshots as one consistent read.
func (s *MemoryStore) View() weather.DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := weather.DashboardView{
		Cities:    make([]string, len(s.cities)),
		Snapshots: make(map[string]weather.CitySnapshot, len(s.snapshots)),
	}
	copy(view.Cities, s.cities)
	for name, snap := range s.snapshots {
		view.Snapshots[name] = snap
	}
	return view
}
