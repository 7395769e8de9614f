package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpapi "github.com/i474232898/what-to-wear/internal/api/http"
	"github.com/i474232898/what-to-wear/internal/config"
	"github.com/i474232898/what-to-wear/internal/location"
	"github.com/i474232898/what-to-wear/internal/logging"
	"github.com/i474232898/what-to-wear/internal/skill"
	"github.com/i474232898/what-to-wear/internal/weather"
	"github.com/i474232898/what-to-wear/internal/weather/providers"
)

func main() {
	envErr := godotenv.Load()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", false)
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		log.Info().Err(envErr).Msg("no .env file found or error loading it")
	}

	// Shared HTTP client for the device settings API and the weather provider.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var provider weather.Provider
	switch cfg.WeatherProvider {
	case config.ProviderWeatherAPI:
		provider = providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, cfg.WeatherAPIBaseURL)
	default:
		provider = providers.NewOpenWeatherProvider(httpClient, cfg.WeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.WeatherCountry)
	}

	resolver := location.NewResolver(location.NewAddressClient(httpClient))
	whatToWear := skill.New(resolver, provider, skill.WithTrafficLog(cfg.LogSkillTraffic))

	app := fiber.New(fiber.Config{
		AppName:               "what-to-wear",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, whatToWear)

	go func() {
		log.Info().Str("port", cfg.Port).Str("provider", provider.Name()).Msg("listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
