package weather

import (
	"testing"
	"time"
)

func TestIsDaytimeBoundaries(t *testing.T) {
	sunrise := time.Date(2024, 3, 10, 6, 30, 0, 0, time.UTC)
	sunset := time.Date(2024, 3, 10, 18, 15, 0, 0, time.UTC)

	cases := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{"before sunrise", sunrise.Add(-time.Minute), false},
		{"exactly sunrise", sunrise, false},
		{"mid day", sunrise.Add(6 * time.Hour), true},
		{"exactly sunset", sunset, false},
		{"after sunset", sunset.Add(time.Minute), false},
	}

	for _, tc := range cases {
		if got := IsDaytime(tc.ts, sunrise, sunset); got != tc.want {
			t.Errorf("%s: IsDaytime = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIconForPriorityOrder(t *testing.T) {
	cases := []struct {
		desc  string
		isDay bool
		want  Icon
	}{
		// "shower" must win over "rain" when both substrings appear.
		{"light rain showers", true, IconShowers},
		{"light rain", true, IconRain},
		{"broken clouds", false, IconBrokenClouds},
		{"broken clouds", true, IconBrokenClouds},
		{"overcast clouds", true, IconBrokenClouds},
		{"scattered clouds", false, IconScattered},
		{"few clouds", true, IconFewCloudsDay},
		{"few clouds", false, IconFewCloudsNight},
		{"clear sky", true, IconClearDay},
		{"clear sky", false, IconClearNight},
		{"Thunderstorm with heavy rain", true, IconThunderstorm},
		{"sleet", false, IconSnow},
		{"fog", true, IconMist},
		{"sand/dust whirls", true, IconDust},
		// Unknown descriptions fall back to clear, day/night sensitive.
		{"volcanic ash", true, IconClearDay},
		{"volcanic ash", false, IconClearNight},
	}

	for _, tc := range cases {
		if got := IconFor(tc.desc, tc.isDay); got != tc.want {
			t.Errorf("IconFor(%q, %v) = %q, want %q", tc.desc, tc.isDay, got, tc.want)
		}
	}
}

func TestIconForShowerBeforeThunder(t *testing.T) {
	// Descriptions only matching via case-insensitive comparison.
	if got := IconFor("Drizzle", true); got != IconShowers {
		t.Fatalf("IconFor(Drizzle) = %q, want %q", got, IconShowers)
	}
}

func point(ts time.Time, temp, humidity, wind float64) ForecastPoint {
	return ForecastPoint{
		Timestamp:   ts,
		Temperature: temp,
		Humidity:    humidity,
		WindSpeed:   wind,
	}
}

func TestGroupByDayTwoDays(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	forecast := []ForecastPoint{
		point(day1, 10, 80, 3),
		point(day1.Add(3*time.Hour), 9, 82, 4), // crosses midnight into day 2
		point(day2.Add(3*time.Hour), 8, 85, 5),
	}

	days := GroupByDay(forecast)
	if len(days) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(days))
	}
	if days[0].Date != "2024-03-10" || days[1].Date != "2024-03-11" {
		t.Fatalf("unexpected day order: %s, %s", days[0].Date, days[1].Date)
	}
	if len(days[0].Points) != 1 || len(days[1].Points) != 2 {
		t.Fatalf("unexpected group sizes: %d, %d", len(days[0].Points), len(days[1].Points))
	}
	if !days[1].Points[0].Timestamp.Before(days[1].Points[1].Timestamp) {
		t.Fatal("within-day order was not preserved")
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	if days := GroupByDay(nil); len(days) != 0 {
		t.Fatalf("expected no groups for empty forecast, got %d", len(days))
	}
}

func TestToChartSeriesEmpty(t *testing.T) {
	s := ToChartSeries(nil)

	if s.Labels == nil || s.Temperature == nil || s.Humidity == nil || s.WindSpeed == nil {
		t.Fatal("empty forecast must yield empty slices, not nil")
	}
	if len(s.Labels) != 0 || len(s.Temperature) != 0 || len(s.Humidity) != 0 || len(s.WindSpeed) != 0 {
		t.Fatal("empty forecast must yield zero-length series")
	}
}

func TestToChartSeriesAlignment(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	forecast := []ForecastPoint{
		point(base, 18.3, 60, 2.5),
		point(base.Add(3*time.Hour), 17.1, 65, 3.0),
		point(base.Add(6*time.Hour), 15.8, 70, 3.5),
	}

	s := ToChartSeries(forecast)

	if len(s.Labels) != 3 || len(s.Temperature) != 3 || len(s.Humidity) != 3 || len(s.WindSpeed) != 3 {
		t.Fatalf("series lengths must equal forecast length, got %d/%d/%d/%d",
			len(s.Labels), len(s.Temperature), len(s.Humidity), len(s.WindSpeed))
	}
	if s.Labels[0] != "12:00" || s.Labels[1] != "15:00" {
		t.Fatalf("unexpected labels: %v", s.Labels)
	}
	if s.Temperature[1] != 17.1 || s.Humidity[1] != 65 || s.WindSpeed[1] != 3.0 {
		t.Fatal("series values are not index-aligned with their points")
	}
}
