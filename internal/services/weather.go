package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/soratabi/travel-assistant-backend/internal/models"
)

var ErrMissingLocation = errors.New("provide either a city name or coordinates (lat, lon)")

const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderWeatherAPI     = "weatherapi"

	openWeatherMapURL = "https://api.openweathermap.org/data/2.5/weather"
	weatherAPIURL     = "https://api.weatherapi.com/v1/current.json"
)

// WeatherQuery selects a location by city name or by coordinates; exactly one
// form must be present. Coordinates stay strings, passed through as received.
type WeatherQuery struct {
	City string
	Lat  string
	Lon  string
}

func (q WeatherQuery) valid() bool {
	return q.City != "" || (q.Lat != "" && q.Lon != "")
}

type WeatherService struct {
	apiKey   string
	provider string
	client   *http.Client

	// Overridable for tests.
	openWeatherMapURL string
	weatherAPIURL     string
}

func NewWeatherService(apiKey, provider string) *WeatherService {
	return &WeatherService{
		apiKey:            apiKey,
		provider:          provider,
		client:            &http.Client{Timeout: 20 * time.Second},
		openWeatherMapURL: openWeatherMapURL,
		weatherAPIURL:     weatherAPIURL,
	}
}

// Fetch returns the current conditions for the query. With no API key it
// returns the canned snapshot and mock=true instead of failing. Upstream
// failures are not retried.
func (s *WeatherService) Fetch(ctx context.Context, q WeatherQuery) (*models.WeatherSnapshot, bool, error) {
	if !q.valid() {
		return nil, false, ErrMissingLocation
	}

	if s.apiKey == "" {
		city := q.City
		if city == "" {
			city = "Tokyo"
		}
		snap := MockSnapshot(city)
		return &snap, true, nil
	}

	switch s.provider {
	case ProviderOpenWeatherMap:
		snap, err := s.fetchOpenWeatherMap(ctx, q)
		return snap, false, err
	case ProviderWeatherAPI:
		snap, err := s.fetchWeatherAPI(ctx, q)
		return snap, false, err
	default:
		return nil, false, fmt.Errorf("invalid weather provider %q: use %q or %q", s.provider, ProviderOpenWeatherMap, ProviderWeatherAPI)
	}
}

type openWeatherMapResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // already m/s with units=metric
	} `json:"wind"`
}

func (s *WeatherService) fetchOpenWeatherMap(ctx context.Context, q WeatherQuery) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	if q.City != "" {
		params.Set("q", q.City)
	} else {
		params.Set("lat", q.Lat)
		params.Set("lon", q.Lon)
	}
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	var data openWeatherMapResponse
	if err := s.getJSON(ctx, s.openWeatherMapURL+"?"+params.Encode(), "openweathermap", &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("openweathermap: response has no weather conditions")
	}

	return &models.WeatherSnapshot{
		Location:    data.Name,
		Temperature: int(math.Round(data.Main.Temp)),
		Condition:   data.Weather[0].Main,
		Description: data.Weather[0].Description,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Icon:        data.Weather[0].Icon,
		FeelsLike:   int(math.Round(data.Main.FeelsLike)),
	}, nil
}

type weatherAPIResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Humidity   int     `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		Condition  struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`
}

func (s *WeatherService) fetchWeatherAPI(ctx context.Context, q WeatherQuery) (*models.WeatherSnapshot, error) {
	query := q.City
	if query == "" {
		query = q.Lat + "," + q.Lon
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("q", query)

	var data weatherAPIResponse
	if err := s.getJSON(ctx, s.weatherAPIURL+"?"+params.Encode(), "weatherapi", &data); err != nil {
		return nil, err
	}

	return &models.WeatherSnapshot{
		Location:    data.Location.Name,
		Temperature: int(math.Round(data.Current.TempC)),
		Condition:   data.Current.Condition.Text,
		Description: data.Current.Condition.Text,
		Humidity:    data.Current.Humidity,
		WindSpeed:   data.Current.WindKph / 3.6, // km/h to m/s
		Icon:        data.Current.Condition.Icon,
		FeelsLike:   int(math.Round(data.Current.FeelsLikeC)),
	}, nil
}

func (s *WeatherService) getJSON(ctx context.Context, fullURL, provider string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%s request: %w", provider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", provider, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %d: %s", provider, resp.StatusCode, preview(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid JSON from %s: %v; body: %s", provider, err, preview(body))
	}
	return nil
}

func preview(body []byte) string {
	const max = 500
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

// MockSnapshot is the fixed fallback returned when no weather API key is set.
func MockSnapshot(city string) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Location:    city,
		Temperature: 22,
		Condition:   "Partly Cloudy",
		Description: "partly cloudy",
		Humidity:    65,
		WindSpeed:   3.5,
		Icon:        "02d",
		FeelsLike:   21,
	}
}
