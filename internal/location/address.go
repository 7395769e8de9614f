package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// AddressClient reads the country and postal code from the device settings API.
type AddressClient struct {
	client *http.Client
}

func NewAddressClient(client *http.Client) *AddressClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AddressClient{client: client}
}

type postalAddress struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

// PostalCode never fails loudly: a refused consent shows up as a 403 and is
// an expected outcome, so every error is logged and reported as !ok.
func (c *AddressClient) PostalCode(ctx context.Context, d Device) (string, bool) {
	if d.ID == "" || d.APIEndpoint == "" {
		log.Debug().Msg("device address lookup skipped: no device id or api endpoint")
		return "", false
	}

	u := fmt.Sprintf("%s/v1/devices/%s/settings/address/countryAndPostalCode",
		strings.TrimRight(d.APIEndpoint, "/"), url.PathEscape(d.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Debug().Err(err).Msg("device address request build failed")
		return "", false
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("device address request failed")
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug().Int("status", resp.StatusCode).Msg("device address unavailable")
		return "", false
	}

	var addr postalAddress
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&addr); err != nil {
		log.Debug().Err(err).Msg("device address payload malformed")
		return "", false
	}

	code := strings.TrimSpace(addr.PostalCode)
	if code == "" {
		return "", false
	}
	return code, true
}
