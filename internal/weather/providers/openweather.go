package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/what-to-wear/internal/weather"
)

// DefaultOpenWeatherURL is the current-weather endpoint of OpenWeatherMap.
const DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	country string
	client  *http.Client
}

// NewOpenWeatherProvider builds a provider. An empty baseURL selects
// DefaultOpenWeatherURL; country is appended to every query ("us" in practice).
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL, country string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		country: country,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherPayload struct {
	Name string `json:"name"`
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		TempMin  *float64 `json:"temp_min"`
		TempMax  *float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (p *OpenWeatherProvider) Current(ctx context.Context, location string) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("%w: openweather %w", weather.ErrFetch, errNoAPIKey)
	}

	// city,country or zip,country
	q := location
	if p.country != "" {
		q = fmt.Sprintf("%s,%s", location, p.country)
	}

	values := url.Values{}
	values.Set("q", q)
	values.Set("units", "imperial")
	values.Set("appid", p.apiKey)

	var payload openWeatherPayload
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), &payload); err != nil {
		return weather.Snapshot{}, err
	}

	if len(payload.Weather) == 0 {
		return weather.Snapshot{}, fmt.Errorf("%w: openweather payload has no weather entry", weather.ErrFetch)
	}
	if payload.Name == "" {
		return weather.Snapshot{}, fmt.Errorf("%w: openweather payload has no city name", weather.ErrFetch)
	}
	m := payload.Main
	if err := requireReadings("openweather",
		reading{"main.temp", m.Temp},
		reading{"main.humidity", m.Humidity},
		reading{"main.temp_min", m.TempMin},
		reading{"main.temp_max", m.TempMax},
	); err != nil {
		return weather.Snapshot{}, err
	}

	return weather.Snapshot{
		City:        payload.Name,
		Description: payload.Weather[0].Description,
		Temperature: weather.Ceil(*m.Temp),
		Humidity:    weather.Ceil(*m.Humidity),
		TempMin:     weather.Ceil(*m.TempMin),
		TempMax:     weather.Ceil(*m.TempMax),
	}, nil
}
