package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/what-to-wear/internal/alexa"
	"github.com/i474232898/what-to-wear/internal/location"
	"github.com/i474232898/what-to-wear/internal/skill"
	"github.com/i474232898/what-to-wear/internal/weather"
)

type stubProvider struct {
	snap weather.Snapshot
	err  error
}

func (p stubProvider) Name() string { return "stub" }

func (p stubProvider) Current(context.Context, string) (weather.Snapshot, error) {
	return p.snap, p.err
}

func newApp(p weather.Provider) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	s := skill.New(location.NewResolver(location.NewAddressClient(nil)), p)
	RegisterRoutes(app, s)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/skill", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestHealth(t *testing.T) {
	app := newApp(stubProvider{})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSkillEndpoint(t *testing.T) {
	app := newApp(stubProvider{snap: weather.Snapshot{City: "Miami", Description: "sunny", Temperature: 88, TempMin: 85, TempMax: 90}})

	resp, body := post(t, app, `{
		"version": "1.0",
		"request": {"type": "IntentRequest", "requestId": "r1",
			"intent": {"name": "GetWhatToWearIntent", "slots": {"city": {"name": "city", "value": "Miami"}}}}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out alexa.ResponseEnvelope
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotNil(t, out.Response.OutputSpeech)
	assert.Contains(t, out.Response.OutputSpeech.Text, "tank top with shorts")
	assert.Equal(t, alexa.CardStandard, out.Response.Card.Type)
}

func TestSkillEndpointApologizesOnWeatherFailure(t *testing.T) {
	app := newApp(stubProvider{err: weather.ErrFetch})

	resp, body := post(t, app, `{
		"version": "1.0",
		"request": {"type": "IntentRequest", "requestId": "r1",
			"intent": {"name": "GetWhatToWearIntent", "slots": {"zipcode": {"name": "zipcode", "value": "10001"}}}}
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out alexa.ResponseEnvelope
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Sorry. I cannot help you with that.", out.Response.OutputSpeech.Text)
}

// TestSkillEndpointValidation verifies that malformed or incomplete
// envelopes are rejected before reaching the skill.
func TestSkillEndpointValidation(t *testing.T) {
	app := newApp(stubProvider{})

	cases := map[string]string{
		"not json":        `{"version":`,
		"missing version": `{"request": {"type": "LaunchRequest", "requestId": "r"}}`,
		"missing type":    `{"version": "1.0", "request": {"requestId": "r"}}`,
		"missing id":      `{"version": "1.0", "request": {"type": "LaunchRequest"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, _ := post(t, app, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
