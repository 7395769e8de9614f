package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Weather provider names accepted in WEATHER_PROVIDER.
const (
	ProviderOpenWeather = "openweather"
	ProviderWeatherAPI  = "weatherapi"
)

// ErrMissingAPIKey is returned when no weather API key is set.
var ErrMissingAPIKey = errors.New("WEATHER_API_KEY is required")

type AppConfig struct {
	// WeatherAPIKey is the only required secret.
	WeatherAPIKey string

	WeatherProvider    string
	WeatherCountry     string // appended to OpenWeatherMap queries
	OpenWeatherBaseURL string
	WeatherAPIBaseURL  string

	// HTTPTimeout bounds each outbound call.
	HTTPTimeout time.Duration

	Port string

	LogLevel        string
	LogPretty       bool
	LogSkillTraffic bool // dump request and response envelopes at debug level
}

// Load reads configuration from environment with sensible defaults.
// A .env file, if any, is loaded by the caller before this runs.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = getenvDefault("WEATHER_API_KEY", os.Getenv("apiKey"))
	if cfg.WeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.WeatherProvider = strings.ToLower(getenvDefault("WEATHER_PROVIDER", ProviderOpenWeather))
	switch cfg.WeatherProvider {
	case ProviderOpenWeather, ProviderWeatherAPI:
	default:
		return nil, fmt.Errorf("invalid WEATHER_PROVIDER %q", cfg.WeatherProvider)
	}

	cfg.WeatherCountry = getenvDefault("WEATHER_COUNTRY", "us")
	cfg.OpenWeatherBaseURL = os.Getenv("OPENWEATHER_BASE_URL")
	cfg.WeatherAPIBaseURL = os.Getenv("WEATHERAPI_BASE_URL")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive")
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogPretty = getenvBool("LOG_PRETTY", false)
	cfg.LogSkillTraffic = getenvBool("LOG_SKILL_TRAFFIC", false)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
