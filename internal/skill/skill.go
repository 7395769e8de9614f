// Package skill dispatches voice requests to the What to Wear handlers.
package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/what-to-wear/internal/alexa"
	"github.com/i474232898/what-to-wear/internal/location"
	"github.com/i474232898/what-to-wear/internal/weather"
)

var (
	errUnhandled = errors.New("no handler for request")
	errPanic     = errors.New("handler panicked")
)

// Skill answers one request envelope at a time. It holds no per-request state.
type Skill struct {
	resolver    *location.Resolver
	provider    weather.Provider
	dumpTraffic bool
}

// Option tweaks a Skill at construction.
type Option func(*Skill)

// WithTrafficLog logs every request and response envelope at debug level.
func WithTrafficLog(enabled bool) Option {
	return func(s *Skill) { s.dumpTraffic = enabled }
}

func New(resolver *location.Resolver, provider weather.Provider, opts ...Option) *Skill {
	s := &Skill{resolver: resolver, provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle always produces a response. Faults from any handler are logged and
// turned into a generic apology with the help reprompt.
func (s *Skill) Handle(ctx context.Context, env *alexa.RequestEnvelope) *alexa.ResponseEnvelope {
	logger := log.With().
		Str("invocation", uuid.NewString()).
		Str("request_id", env.Request.RequestID).
		Str("request_type", env.Request.Type).
		Str("intent", env.IntentName()).
		Logger()
	ctx = logger.WithContext(ctx)

	if s.dumpTraffic {
		logger.Debug().Interface("request", env.Request).Msg("skill request")
	}

	resp, err := s.safeDispatch(ctx, env)
	if err != nil {
		logger.Error().Err(err).Msg("in catch-all handler")
		resp = alexa.NewBuilder().Speak(exceptionMessage).Ask(helpReprompt).Build()
	}

	if s.dumpTraffic {
		logger.Debug().Interface("response", resp).Msg("skill response")
	}
	return resp
}

// safeDispatch turns a panic anywhere below dispatch into an error so it
// reaches the same catch-all as every other fault.
func (s *Skill) safeDispatch(ctx context.Context, env *alexa.RequestEnvelope) (resp *alexa.ResponseEnvelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return s.dispatch(ctx, env)
}

func (s *Skill) dispatch(ctx context.Context, env *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	switch env.Request.Type {
	case alexa.LaunchRequest:
		return s.whatToWear(ctx, env)
	case alexa.SessionEndedRequest:
		return s.sessionEnded(ctx, env), nil
	case alexa.IntentRequest:
	default:
		return nil, fmt.Errorf("%w: type %q", errUnhandled, env.Request.Type)
	}

	switch name := env.IntentName(); name {
	case IntentWhatToWear:
		return s.whatToWear(ctx, env)
	case alexa.HelpIntent:
		zerolog.Ctx(ctx).Info().Msg("in help handler")
		return alexa.NewBuilder().Speak(helpMessage).Ask(helpReprompt).SimpleCard(skillName, helpMessage).Build(), nil
	case alexa.CancelIntent, alexa.StopIntent:
		zerolog.Ctx(ctx).Info().Msg("in cancel or stop handler")
		return alexa.NewBuilder().Speak(stopMessage).EndSession().Build(), nil
	case alexa.FallbackIntent:
		zerolog.Ctx(ctx).Info().Msg("in fallback handler")
		return alexa.NewBuilder().Speak(fallbackMessage).Ask(fallbackReprompt).Build(), nil
	default:
		return nil, fmt.Errorf("%w: intent %q", errUnhandled, name)
	}
}

func (s *Skill) sessionEnded(ctx context.Context, env *alexa.RequestEnvelope) *alexa.ResponseEnvelope {
	zerolog.Ctx(ctx).Info().Str("reason", env.Request.Reason).Msg("session ended")
	return alexa.NewBuilder().Build()
}

// whatToWear serves both the launch request and the primary intent.
func (s *Skill) whatToWear(ctx context.Context, env *alexa.RequestEnvelope) (*alexa.ResponseEnvelope, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("in what-to-wear handler")

	sys := env.Context.System
	q := location.Query{
		ZipCode: env.SlotValue(slotZipCode),
		City:    env.SlotValue(slotCity),
		Device: location.Device{
			ID:          sys.Device.DeviceID,
			APIEndpoint: sys.APIEndpoint,
			AccessToken: sys.APIAccessToken,
		},
	}

	loc, err := s.resolver.Resolve(ctx, q)
	if errors.Is(err, location.ErrPermissionRequired) {
		logger.Info().Msg("device location unavailable, asking for consent")
		return alexa.NewBuilder().Speak(missingPermissions).ConsentCard(location.ConsentScope).Build(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve location: %w", err)
	}

	snap, err := s.provider.Current(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%s lookup for %q: %w", s.provider.Name(), loc, err)
	}

	rec := newRecommendation(snap)
	speech := rec.Speech()
	logger.Debug().Str("city", snap.City).Int("temp", snap.Temperature).Str("outfit", rec.Outfit.Text).Msg("recommendation ready")

	return alexa.NewBuilder().Speak(speech).StandardCard(skillName, speech, rec.Outfit.ImageURL).Build(), nil
}
