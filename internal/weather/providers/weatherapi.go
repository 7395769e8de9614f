package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/what-to-wear/internal/weather"
)

// DefaultWeatherAPIURL is the API root of WeatherAPI.com.
const DefaultWeatherAPIURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
// It uses the one-day forecast endpoint because current.json carries no daily
// high and low.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = DefaultWeatherAPIURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPIPayload struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempF     *float64 `json:"temp_f"`
		Humidity  *float64 `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		Forecastday []struct {
			Day struct {
				MaxtempF *float64 `json:"maxtemp_f"`
				MintempF *float64 `json:"mintemp_f"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (p *WeatherAPIProvider) Current(ctx context.Context, location string) (weather.Snapshot, error) {
	if p.apiKey == "" {
		return weather.Snapshot{}, fmt.Errorf("%w: weatherapi %w", weather.ErrFetch, errNoAPIKey)
	}

	// WeatherAPI uses "q" for location; it accepts a city name or a US zip.
	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", location)
	values.Set("days", "1")

	var payload weatherAPIPayload
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s/forecast.json?%s", p.baseURL, values.Encode()), &payload); err != nil {
		return weather.Snapshot{}, err
	}

	if len(payload.Forecast.Forecastday) == 0 {
		return weather.Snapshot{}, fmt.Errorf("%w: weatherapi payload has no forecast day", weather.ErrFetch)
	}
	if payload.Location.Name == "" {
		return weather.Snapshot{}, fmt.Errorf("%w: weatherapi payload has no city name", weather.ErrFetch)
	}

	cur := payload.Current
	day := payload.Forecast.Forecastday[0].Day
	if err := requireReadings("weatherapi",
		reading{"current.temp_f", cur.TempF},
		reading{"current.humidity", cur.Humidity},
		reading{"day.mintemp_f", day.MintempF},
		reading{"day.maxtemp_f", day.MaxtempF},
	); err != nil {
		return weather.Snapshot{}, err
	}

	return weather.Snapshot{
		City:        payload.Location.Name,
		Description: strings.ToLower(cur.Condition.Text),
		Temperature: weather.Ceil(*cur.TempF),
		Humidity:    weather.Ceil(*cur.Humidity),
		TempMin:     weather.Ceil(*day.MintempF),
		TempMax:     weather.Ceil(*day.MaxtempF),
	}, nil
}
