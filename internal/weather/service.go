package weather

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates the city registry, provider fetches and the
// snapshot store. All mutations of shared state go through the store's
// keyed operations, so concurrent fetch completions for different
// cities never clobber each other.
type Service struct {
	store        Store
	provider     Provider
	fetchTimeout time.Duration
}

// NewService creates a new Service. fetchTimeout bounds each outbound
// fetch; zero means no bound.
func NewService(store Store, provider Provider, fetchTimeout time.Duration) *Service {
	return &Service{
		store:        store,
		provider:     provider,
		fetchTimeout: fetchTimeout,
	}
}

// AddCity registers a city and, when it was actually added, kicks off
// an asynchronous fetch for it. The registry mutation is synchronous;
// the snapshot appears later, after the fetch succeeds. Blank and
// duplicate names are silently ignored.
func (s *Service) AddCity(name string) bool {
	if !s.store.AddCity(name) {
		return false
	}

	go func() {
		ctx := context.Background()
		if s.fetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()
		}

		if err := s.FetchAndStore(ctx, name); err != nil {
			log.Printf("fetch failed for %q: %v", name, err)
		}
	}()

	return true
}

// RemoveCity removes a city and its snapshot. A fetch already in flight
// for the city will complete but its result is dropped by the store.
func (s *Service) RemoveCity(name string) {
	s.store.RemoveCity(name)
}

// Cities returns the registry in insertion order.
func (s *Service) Cities() []string {
	return s.store.Cities()
}

// View returns the registry plus all fetched snapshots.
func (s *Service) View() DashboardView {
	return s.store.View()
}

// GetSnapshot delegates to the underlying store.
func (s *Service) GetSnapshot(name string) (CitySnapshot, error) {
	return s.store.GetSnapshot(name)
}

// FetchAndStore looks up current conditions and the forecast for one
// city and upserts a snapshot only when both calls succeed. On any
// failure the store is left untouched for that city; the snapshot is
// never written partially and no error entry is kept.
func (s *Service) FetchAndStore(ctx context.Context, name string) error {
	jobID := uuid.NewString()
	log.Printf("DEBUG: fetch %s started for %q via %s", jobID, name, s.provider.Name())

	var (
		wg          sync.WaitGroup
		current     CurrentConditions
		forecast    []ForecastPoint
		currentErr  error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = s.provider.Current(ctx, name)
	}()
	go func() {
		defer wg.Done()
		forecast, forecastErr = s.provider.Forecast(ctx, name)
	}()
	wg.Wait()

	if currentErr != nil {
		return fmt.Errorf("fetch %s: current conditions for %q: %w", jobID, name, currentErr)
	}
	if forecastErr != nil {
		return fmt.Errorf("fetch %s: forecast for %q: %w", jobID, name, forecastErr)
	}

	snapshot := CitySnapshot{
		Current:   current,
		Forecast:  forecast,
		FetchedAt: time.Now().UTC(),
	}

	if !s.store.SaveSnapshot(name, snapshot) {
		// City was removed while the fetch was in flight.
		log.Printf("fetch %s: %q no longer tracked; dropping result", jobID, name)
		return nil
	}

	log.Printf("DEBUG: fetch %s stored snapshot for %q (%d forecast points)", jobID, name, len(forecast))
	return nil
}

// RefreshAll re-fetches every tracked city concurrently. Failures are
// logged per city and leave the last good snapshot in place.
func (s *Service) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, name := range s.store.Cities() {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.FetchAndStore(ctx, name); err != nil {
				log.Printf("refresh failed for %q: %v", name, err)
			}
		}()
	}
	wg.Wait()
}
