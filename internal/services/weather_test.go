package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestWeatherService(provider, upstreamURL string) *WeatherService {
	return &WeatherService{
		apiKey:            "test-key",
		provider:          provider,
		client:            &http.Client{Timeout: 5 * time.Second},
		openWeatherMapURL: upstreamURL,
		weatherAPIURL:     upstreamURL,
	}
}

func TestFetchRequiresCityOrCoordinates(t *testing.T) {
	// No key: valid queries settle on the mock path without touching the
	// network, invalid ones must still be rejected first.
	svc := NewWeatherService("", ProviderOpenWeatherMap)

	tests := []struct {
		name string
		q    WeatherQuery
		want bool // valid
	}{
		{"city only", WeatherQuery{City: "Tokyo"}, true},
		{"coordinates only", WeatherQuery{Lat: "35.6", Lon: "139.7"}, true},
		{"nothing", WeatherQuery{}, false},
		{"lat without lon", WeatherQuery{Lat: "35.6"}, false},
		{"lon without lat", WeatherQuery{Lon: "139.7"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Fetch(context.Background(), tc.q)
			if tc.want && errors.Is(err, ErrMissingLocation) {
				t.Errorf("Expected query %+v to be accepted", tc.q)
			}
			if !tc.want && !errors.Is(err, ErrMissingLocation) {
				t.Errorf("Expected ErrMissingLocation for %+v, got %v", tc.q, err)
			}
		})
	}
}

func TestFetchWithoutKeyReturnsMockSnapshot(t *testing.T) {
	svc := NewWeatherService("", ProviderOpenWeatherMap)

	snap, mock, err := svc.Fetch(context.Background(), WeatherQuery{City: "Kyoto"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !mock {
		t.Error("Expected mock=true without an API key")
	}
	if snap.Location != "Kyoto" {
		t.Errorf("Expected requested city in mock snapshot, got %q", snap.Location)
	}

	// Coordinate queries fall back to the default city.
	snap, _, err = svc.Fetch(context.Background(), WeatherQuery{Lat: "35.6", Lon: "139.7"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if snap.Location != "Tokyo" {
		t.Errorf("Expected default city Tokyo, got %q", snap.Location)
	}
}

func TestFetchOpenWeatherMapNormalization(t *testing.T) {
	var gotQuery url.Values
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{
			"name": "Tokyo",
			"main": {"temp": 22.6, "feels_like": 21.4, "humidity": 65},
			"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
			"wind": {"speed": 3.5}
		}`)
	}))
	defer upstream.Close()

	svc := newTestWeatherService(ProviderOpenWeatherMap, upstream.URL)

	snap, mock, err := svc.Fetch(context.Background(), WeatherQuery{City: "Tokyo"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if mock {
		t.Error("Expected live result, got mock")
	}

	if gotQuery.Get("q") != "Tokyo" || gotQuery.Get("units") != "metric" || gotQuery.Get("appid") != "test-key" {
		t.Errorf("Unexpected upstream query: %v", gotQuery)
	}

	if snap.Location != "Tokyo" {
		t.Errorf("Expected location Tokyo, got %q", snap.Location)
	}
	if snap.Temperature != 23 {
		t.Errorf("Expected temperature rounded to 23, got %d", snap.Temperature)
	}
	if snap.FeelsLike != 21 {
		t.Errorf("Expected feels-like rounded to 21, got %d", snap.FeelsLike)
	}
	if snap.Condition != "Clouds" || snap.Description != "scattered clouds" || snap.Icon != "03d" {
		t.Errorf("Unexpected condition fields: %+v", snap)
	}
	if snap.WindSpeed != 3.5 {
		t.Errorf("Expected wind speed 3.5 m/s, got %v", snap.WindSpeed)
	}
}

func TestFetchWeatherAPIConvertsWindToMetersPerSecond(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"location": {"name": "Nagoya"},
			"current": {
				"temp_c": 18.2,
				"feelslike_c": 17.8,
				"humidity": 55,
				"wind_kph": 36,
				"condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/113.png"}
			}
		}`)
	}))
	defer upstream.Close()

	svc := newTestWeatherService(ProviderWeatherAPI, upstream.URL)

	snap, _, err := svc.Fetch(context.Background(), WeatherQuery{City: "Nagoya"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if snap.WindSpeed != 10.0 {
		t.Errorf("Expected wind_kph 36 to normalize to 10.0 m/s, got %v", snap.WindSpeed)
	}
	if snap.Temperature != 18 || snap.FeelsLike != 18 {
		t.Errorf("Expected rounded temps 18/18, got %d/%d", snap.Temperature, snap.FeelsLike)
	}
	if snap.Condition != "Sunny" || snap.Description != "Sunny" {
		t.Errorf("Expected condition text reused as description, got %+v", snap)
	}
}

func TestFetchWeatherAPICoordinateQuery(t *testing.T) {
	var gotQ string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"location": {"name": "Yokohama"}, "current": {"temp_c": 20, "feelslike_c": 20, "humidity": 50, "wind_kph": 0, "condition": {"text": "Clear", "icon": ""}}}`)
	}))
	defer upstream.Close()

	svc := newTestWeatherService(ProviderWeatherAPI, upstream.URL)

	if _, _, err := svc.Fetch(context.Background(), WeatherQuery{Lat: "35.44", Lon: "139.64"}); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if gotQ != "35.44,139.64" {
		t.Errorf("Expected combined coordinate query, got %q", gotQ)
	}
}

func TestFetchUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod": 401, "message": "Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer upstream.Close()

	svc := newTestWeatherService(ProviderOpenWeatherMap, upstream.URL)

	_, _, err := svc.Fetch(context.Background(), WeatherQuery{City: "Tokyo"})
	if err == nil {
		t.Fatal("Expected error on non-200 upstream response")
	}
}

func TestFetchUnknownProvider(t *testing.T) {
	svc := NewWeatherService("key", "accuweather")

	if _, _, err := svc.Fetch(context.Background(), WeatherQuery{City: "Tokyo"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
