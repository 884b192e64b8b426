package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ishan3842/weather-dashboard/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenWeatherProvider implements the weather.Provider interface against
// OpenWeatherMap's current-conditions and 5-day/3-hour forecast
// endpoints, always in metric units. The two endpoints sit behind
// separate circuit breakers because they fail independently.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	client      *http.Client
	currentCB   *gobreaker.CircuitBreaker
	forecastCB  *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	settings := func(endpoint string) gobreaker.Settings {
		return gobreaker.Settings{
			Name:        "openweather-" + endpoint,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}
	}

	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		client:      client,
		currentCB:   gobreaker.NewCircuitBreaker(settings("current")),
		forecastCB:  gobreaker.NewCircuitBreaker(settings("forecast")),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) buildRequest(baseURL, city string) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("units", "metric")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}
}

// Current fetches current conditions for a city by name.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string) (weather.CurrentConditions, error) {
	if p.apiKey == "" {
		return weather.CurrentConditions{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequest(ctx, p.client, p.currentCB, p.buildRequest(p.currentURL, city))
	if err != nil {
		return weather.CurrentConditions{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Name string `json:"name"`
		Dt   int64  `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Sys struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, err
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	return weather.CurrentConditions{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Timestamp:   time.Unix(payload.Dt, 0).UTC(),
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Pressure:    payload.Main.Pressure,
		Description: description,
		Sunrise:     time.Unix(payload.Sys.Sunrise, 0).UTC(),
		Sunset:      time.Unix(payload.Sys.Sunset, 0).UTC(),
	}, nil
}

// Forecast fetches the 5-day/3-hour forecast for a city by name.
// Entries are returned in provider order, which is chronological.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string) ([]weather.ForecastPoint, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequest(ctx, p.client, p.forecastCB, p.buildRequest(p.forecastURL, city))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp      float64 `json:"temp"`
				FeelsLike float64 `json:"feels_like"`
				Humidity  float64 `json:"humidity"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	points := make([]weather.ForecastPoint, 0, len(payload.List))
	for _, entry := range payload.List {
		description := ""
		icon := ""
		if len(entry.Weather) > 0 {
			description = entry.Weather[0].Description
			icon = entry.Weather[0].Icon
		}

		points = append(points, weather.ForecastPoint{
			Timestamp:   time.Unix(entry.Dt, 0).UTC(),
			Temperature: entry.Main.Temp,
			FeelsLike:   entry.Main.FeelsLike,
			Humidity:    entry.Main.Humidity,
			WindSpeed:   entry.Wind.Speed,
			Description: description,
			Icon:        icon,
		})
	}

	return points, nil
}
