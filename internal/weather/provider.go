package weather

import (
	"context"
	"errors"
)

// ErrFetch marks any failure to obtain a Snapshot: transport errors, bad
// status codes and malformed payloads alike. It is fatal for the invocation.
var ErrFetch = errors.New("weather fetch failed")

// Provider abstracts a current-weather source (e.g. OpenWeatherMap, WeatherAPI).
// location is a zip code or a city name as spoken by the user.
type Provider interface {
	Name() string
	Current(ctx context.Context, location string) (Snapshot, error)
}
