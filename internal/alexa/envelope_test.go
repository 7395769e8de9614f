package alexa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intentRequest = `{
	"version": "1.0",
	"context": {"System": {
		"device": {"deviceId": "dev-1"},
		"apiEndpoint": "https://api.amazonalexa.com",
		"apiAccessToken": "tok"
	}},
	"request": {
		"type": "IntentRequest",
		"requestId": "req-1",
		"intent": {"name": "GetWhatToWearIntent", "slots": {
			"zipcode": {"name": "zipcode", "value": "90210"},
			"city": {"name": "city"}
		}}
	}
}`

func TestDecodeIntentRequest(t *testing.T) {
	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(intentRequest), &env))

	assert.Equal(t, "GetWhatToWearIntent", env.IntentName())
	assert.Equal(t, "90210", env.SlotValue("zipcode"))
	assert.Empty(t, env.SlotValue("city"))
	assert.Empty(t, env.SlotValue("missing"))
	assert.Equal(t, "dev-1", env.Context.System.Device.DeviceID)
	assert.Equal(t, "tok", env.Context.System.APIAccessToken)
}

func TestLaunchRequestHasNoIntent(t *testing.T) {
	env := RequestEnvelope{Request: Request{Type: LaunchRequest}}
	assert.Empty(t, env.IntentName())
	assert.Empty(t, env.SlotValue("zipcode"))
}

func TestBuilder(t *testing.T) {
	resp := NewBuilder().Speak("hi").Ask("again?").SimpleCard("T", "C").Build()
	out, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": "1.0",
		"response": {
			"outputSpeech": {"type": "PlainText", "text": "hi"},
			"card": {"type": "Simple", "title": "T", "content": "C"},
			"reprompt": {"outputSpeech": {"type": "PlainText", "text": "again?"}},
			"shouldEndSession": false
		}
	}`, string(out))
}

func TestBuilderCards(t *testing.T) {
	std := NewBuilder().StandardCard("T", "body", "https://img").Build().Response.Card
	assert.Equal(t, &Card{Type: CardStandard, Title: "T", Text: "body", Image: &Image{SmallImageURL: "https://img", LargeImageURL: "https://img"}}, std)

	consent := NewBuilder().ConsentCard("scope").Build().Response.Card
	assert.Equal(t, CardPermissionsConsent, consent.Type)
	assert.Equal(t, []string{"scope"}, consent.Permissions)

	empty := NewBuilder().Build()
	assert.Nil(t, empty.Response.OutputSpeech)
	assert.Nil(t, empty.Response.ShouldEndSession)
}
