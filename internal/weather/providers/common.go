package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/i474232898/what-to-wear/internal/weather"
)

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errNoHTTPClient = errors.New("http client not configured")
	errNoAPIKey     = errors.New("api key is not configured")
	errMissingField = errors.New("payload is missing a field")
)

// reading is a numeric payload field that must be present; JSON null and an
// absent key both decode to nil.
type reading struct {
	field string
	value *float64
}

// requireReadings rejects partial payloads so a missing temperature never
// turns into 0°F.
func requireReadings(provider string, readings ...reading) error {
	for _, r := range readings {
		if r.value == nil {
			return fmt.Errorf("%w: %s %w: %s", weather.ErrFetch, provider, errMissingField, r.field)
		}
	}
	return nil
}

// getJSON performs a single GET and decodes the JSON body into out.
// There is no retry: any failure is wrapped in weather.ErrFetch and returned.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	if client == nil {
		return fmt.Errorf("%w: %w", weather.ErrFetch, errNoHTTPClient)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", weather.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", weather.ErrFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", weather.ErrFetch, errRateLimited)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %w: %d", weather.ErrFetch, errServerError, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %w: %d", weather.ErrFetch, errUnexpected, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode payload: %w", weather.ErrFetch, err)
	}
	return nil
}
