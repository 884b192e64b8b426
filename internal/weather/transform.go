package weather

import (
	"strings"
	"time"

	"github.com/Ishan3842/weather-dashboard/internal/common"
)

// Icon identifies a weather-icon category for the presentation layer.
type Icon string

const (
	IconClearDay       Icon = "clear-day"
	IconClearNight     Icon = "clear-night"
	IconFewCloudsDay   Icon = "few-clouds-day"
	IconFewCloudsNight Icon = "few-clouds-night"
	IconScattered      Icon = "scattered-clouds"
	IconBrokenClouds   Icon = "broken-clouds"
	IconShowers        Icon = "showers"
	IconRain           Icon = "rain"
	IconThunderstorm   Icon = "thunderstorm"
	IconSnow           Icon = "snow"
	IconMist           Icon = "mist"
	IconDust           Icon = "dust"
)

// IsDaytime reports whether t falls strictly between sunrise and sunset.
// A timestamp exactly at sunrise or sunset counts as night.
func IsDaytime(t, sunrise, sunset time.Time) bool {
	return t.After(sunrise) && t.Before(sunset)
}

// iconRule maps description substrings to an icon category. Rules are
// evaluated in order and the first match wins, so narrower terms
// ("shower") must come before broader ones ("rain").
type iconRule struct {
	subs  []string
	day   Icon
	night Icon
}

var iconRules = []iconRule{
	{subs: []string{"clear"}, day: IconClearDay, night: IconClearNight},
	{subs: []string{"few clouds"}, day: IconFewCloudsDay, night: IconFewCloudsNight},
	{subs: []string{"scattered"}, day: IconScattered, night: IconScattered},
	{subs: []string{"broken", "overcast"}, day: IconBrokenClouds, night: IconBrokenClouds},
	{subs: []string{"shower", "drizzle"}, day: IconShowers, night: IconShowers},
	{subs: []string{"rain"}, day: IconRain, night: IconRain},
	{subs: []string{"thunder"}, day: IconThunderstorm, night: IconThunderstorm},
	{subs: []string{"snow", "sleet"}, day: IconSnow, night: IconSnow},
	{subs: []string{"mist", "fog", "haze", "smoke"}, day: IconMist, night: IconMist},
	{subs: []string{"dust", "sand"}, day: IconDust, night: IconDust},
}

// IconFor maps a free-text weather description to an icon category via
// case-insensitive substring matching. Only the clear and few-clouds
// categories vary by time of day. Unrecognized descriptions fall back
// to the clear/sunny icons.
func IconFor(description string, isDay bool) Icon {
	desc := strings.ToLower(description)
	for _, r := range iconRules {
		if common.HasAny(desc, r.subs...) {
			if isDay {
				return r.day
			}
			return r.night
		}
	}
	if isDay {
		return IconClearDay
	}
	return IconClearNight
}

// DayForecast is one calendar day's worth of forecast points.
type DayForecast struct {
	Date   string          `json:"date"` // UTC calendar date, YYYY-MM-DD
	Points []ForecastPoint `json:"points"`
}

// GroupByDay partitions forecast points by UTC calendar date. Days are
// ordered by first occurrence and points within a day keep their
// original chronological order.
func GroupByDay(forecast []ForecastPoint) []DayForecast {
	var days []DayForecast
	index := make(map[string]int)

	for _, p := range forecast {
		date := p.Timestamp.UTC().Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, DayForecast{Date: date})
		}
		days[i].Points = append(days[i].Points, p)
	}

	return days
}

// ChartSeries is the chart-ready view of a forecast: one time-of-day
// label per point and three parallel series aligned index-for-index.
type ChartSeries struct {
	Labels      []string  `json:"labels"`
	Temperature []float64 `json:"temperature"`
	Humidity    []float64 `json:"humidity"`
	WindSpeed   []float64 `json:"windSpeed"`
}

// ToChartSeries flattens a forecast into labels plus temperature,
// humidity and wind-speed series. An empty forecast yields empty
// (non-nil) slices, never an error.
func ToChartSeries(forecast []ForecastPoint) ChartSeries {
	s := ChartSeries{
		Labels:      make([]string, 0, len(forecast)),
		Temperature: make([]float64, 0, len(forecast)),
		Humidity:    make([]float64, 0, len(forecast)),
		WindSpeed:   make([]float64, 0, len(forecast)),
	}

	for _, p := range forecast {
		s.Labels = append(s.Labels, p.Timestamp.UTC().Format("15:04"))
		s.Temperature = append(s.Temperature, p.Temperature)
		s.Humidity = append(s.Humidity, p.Humidity)
		s.WindSpeed = append(s.WindSpeed, p.WindSpeed)
	}

	return s
}
