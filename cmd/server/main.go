// Package main is the entry point for the travel affiliate service.
//
//	@title						Siam Trails Travel API
//	@version					1.0.0
//	@description				Bus, train and minibus schedules between Thai destinations with booking partner links, plus a travel assistant chat.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/siam-trails/travel-affiliate-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/siam-trails/travel-affiliate-service/docs"

	// Application layers
	apihttp "github.com/siam-trails/travel-affiliate-service/internal/adapter/http"
	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/middleware"
	"github.com/siam-trails/travel-affiliate-service/internal/adapter/llm"
	"github.com/siam-trails/travel-affiliate-service/internal/catalog"
	"github.com/siam-trails/travel-affiliate-service/internal/config"
	"github.com/siam-trails/travel-affiliate-service/internal/domain"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/retry"
	"github.com/siam-trails/travel-affiliate-service/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("chat_enabled", cfg.Chat.Enabled()).
		Msg("Configuration loaded")

	routes, err := loadCatalog(cfg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to load route catalog")
	}
	appLog.Info().
		Int("routes", len(routes.Routes())).
		Int("offerings", routes.OfferingCount()).
		Msg("Route catalog loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.HTTPErrorHandler = apihttp.NewHTTPErrorHandler(e)

	middleware.Setup(e, appLog, middleware.Config{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		SkipLogPaths:   []string{"/health"},
		Recovery:       middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
	})

	setupRoutes(e, cfg, routes, appLog)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg)
}

// setupLogger builds the application logger and makes it the zerolog global.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  logger.DefaultConfig().ServiceName,
	})
	logger.SetGlobal(l)
	return l
}

// loadCatalog reads the configured catalog file, or the built-in one, and
// rejects it if any offering breaks the catalog rules.
func loadCatalog(cfg *config.Config) (*catalog.RouteCatalog, error) {
	routes := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		routes = loaded
	}

	if err := routes.Validate(cfg.Affiliate.PartnerDomain); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return routes, nil
}

// setupRoutes wires use cases to handlers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, routes *catalog.RouteCatalog, appLog *logger.Logger) {
	searchUseCase := usecase.NewTransportSearchService(routes, &usecase.TransportConfig{
		PartnerDomain: cfg.Affiliate.PartnerDomain,
		Marker:        cfg.Affiliate.Marker,
	})

	var completer domain.ChatCompleter
	if cfg.Chat.Enabled() {
		completer = llm.NewClient(cfg.Chat.BaseURL, cfg.Chat.APIKey,
			llm.WithLogger(appLog),
			llm.WithTemperature(cfg.Chat.Temperature),
		)
	} else {
		log.Warn().Msg("CHAT_API_KEY not set, travel assistant disabled")
	}

	chatUseCase := usecase.NewChatService(completer, &usecase.ChatConfig{
		Models:         cfg.Chat.Models,
		AttemptTimeout: cfg.Chat.AttemptTimeout,
		RequestTimeout: cfg.Chat.RequestTimeout,
		Retry:          retry.UpstreamConfig.WithMaxAttempts(cfg.Chat.MaxAttempts),
		CacheTTL:       cfg.Chat.CacheTTL,
	}, usecase.WithLogger(appLog))

	apihttp.RegisterRoutes(e,
		apihttp.NewTransportHandler(searchUseCase),
		apihttp.NewChatHandler(chatUseCase),
	)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
