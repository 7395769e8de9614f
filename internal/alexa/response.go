package alexa

// ResponseEnvelope is returned for every invocation.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// Card types.
const (
	CardSimple             = "Simple"
	CardStandard           = "Standard"
	CardPermissionsConsent = "AskForPermissionsConsent"
)

// Card covers the Simple, Standard and AskForPermissionsConsent cards.
type Card struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Text        string   `json:"text,omitempty"`
	Image       *Image   `json:"image,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type Image struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

// Builder assembles a ResponseEnvelope. Calls chain; Build returns the result.
type Builder struct {
	resp Response
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Speak(text string) *Builder {
	b.resp.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: text}
	return b
}

// Ask sets a reprompt and keeps the session open.
func (b *Builder) Ask(reprompt string) *Builder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: reprompt}}
	open := false
	b.resp.ShouldEndSession = &open
	return b
}

func (b *Builder) EndSession() *Builder {
	end := true
	b.resp.ShouldEndSession = &end
	return b
}

func (b *Builder) SimpleCard(title, content string) *Builder {
	b.resp.Card = &Card{Type: CardSimple, Title: title, Content: content}
	return b
}

// StandardCard uses imageURL for both the small and the large image.
func (b *Builder) StandardCard(title, text, imageURL string) *Builder {
	card := &Card{Type: CardStandard, Title: title, Text: text}
	if imageURL != "" {
		card.Image = &Image{SmallImageURL: imageURL, LargeImageURL: imageURL}
	}
	b.resp.Card = card
	return b
}

func (b *Builder) ConsentCard(permissions ...string) *Builder {
	b.resp.Card = &Card{Type: CardPermissionsConsent, Permissions: permissions}
	return b
}

func (b *Builder) Build() *ResponseEnvelope {
	return &ResponseEnvelope{Version: "1.0", Response: b.resp}
}
