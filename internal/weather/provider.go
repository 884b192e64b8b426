package weather

import (
	"context"
)

// Provider abstracts the external weather data source (e.g. OpenWeatherMap).
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (CurrentConditions, error)
	Forecast(ctx context.Context, city string) ([]ForecastPoint, error)
}

// Store is the contract the in-memory registry/snapshot store must satisfy.
// Registry and snapshot map mutate under one lock: RemoveCity drops the
// snapshot atomically, and SaveSnapshot refuses writes for cities that are
// no longer tracked.
type Store interface {
	// AddCity appends the name to the registry. It reports false for a
	// blank name or one already present (exact string match).
	AddCity(name string) bool
	// RemoveCity removes the name and its snapshot, if any.
	RemoveCity(name string)
	// Cities returns the registry in insertion order.
	Cities() []string
	// SaveSnapshot upserts the snapshot for a tracked city. It reports
	// false, writing nothing, when the city is not in the registry.
	SaveSnapshot(name string, snapshot CitySnapshot) bool
	// GetSnapshot returns the snapshot for a city, or an error when no
	// snapshot exists (pending fetch, failed fetch, or untracked city).
	GetSnapshot(name string) (CitySnapshot, error)
	// View returns the registry and all snapshots as one consistent read.
	View() DashboardView
}
