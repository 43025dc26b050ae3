package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	FrontendURL string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Weather
	WeatherAPIKey   string
	WeatherProvider string // "openweathermap" or "weatherapi"

	// UI language the session starts in
	DefaultLanguage string // "en" or "ja"
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		WeatherAPIKey:   strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		WeatherProvider: getEnvOrDefault("WEATHER_API_PROVIDER", "openweathermap"),
		DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "en"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
