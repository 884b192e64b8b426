package weather

import (
	"time"
)

// CurrentConditions is the normalized "right now" view for one city.
type CurrentConditions struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Timestamp   time.Time `json:"timestamp"` // always UTC
	Temperature float64   `json:"temperatureC"`
	FeelsLike   float64   `json:"feelsLikeC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Pressure    float64   `json:"pressureHpa"`
	Description string    `json:"description"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
}

// ForecastPoint is one 3-hour-interval forecast record.
// Points arrive from the provider in chronological order and that order
// is preserved everywhere in this package; grouping never re-sorts.
type ForecastPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperatureC"`
	FeelsLike   float64   `json:"feelsLikeC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// CitySnapshot is the fetched payload cached for one city: current
// conditions plus the ordered forecast.
type CitySnapshot struct {
	Current   CurrentConditions `json:"current"`
	Forecast  []ForecastPoint   `json:"forecast"`
	FetchedAt time.Time         `json:"fetchedAt"`
}

// DashboardView is the read model handed to the presentation layer: the
// ordered registry plus whatever snapshots exist. Cities with a pending
// or failed fetch appear in Cities but have no entry in Snapshots.
type DashboardView struct {
	Cities    []string                `json:"cities"`
	Snapshots map[string]CitySnapshot `json:"snapshots"`
}
