package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finvoice/internal/config"
	"finvoice/internal/gateway"
	"finvoice/internal/handlers"
	"finvoice/internal/middleware"
	"finvoice/internal/news"
	"finvoice/internal/services"
)

func main() {
	// Load .env file if present; the process environment wins otherwise
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics()

	var gw gateway.GatewayInterface
	switch cfg.Gateway.Mode {
	case config.GatewayModeSandbox:
		logger.Warn("Gateway running in sandbox mode with generated data")
		gw = gateway.NewSandbox(cfg.Gateway.SandboxSeed, time.Now())
	default:
		client, err := gateway.NewClient(cfg.Gateway, metrics)
		if err != nil {
			logger.Error("Failed to create gateway client", "error", err.Error())
			os.Exit(1)
		}
		gw = client
	}

	responses := services.NewResponseGenerator()
	processor := services.NewCommandProcessor(
		gw,
		services.NewIntentClassifier(),
		services.NewFilterExtractor(),
		responses,
		metrics,
	)

	var briefing services.BriefingServiceInterface
	if cfg.BriefingEnabled() {
		newsClient, err := news.NewClient(cfg.News)
		if err != nil {
			logger.Error("Failed to create news client", "error", err.Error())
			os.Exit(1)
		}
		briefing = services.NewBriefingService(newsClient, metrics)
	} else {
		logger.Warn("NEWSAPI_KEY not set, briefing endpoint disabled")
	}

	commandHandler := handlers.NewCommandHandler(processor, responses, logger)
	briefingHandler := handlers.NewBriefingHandler(briefing, logger)
	healthHandler := handlers.NewHealthCheckHandler(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.WebhookAuth(cfg.Voice.WebhookSecret, metrics))
	api.POST("/commands", commandHandler.ProcessCommand)
	api.GET("/briefing", briefingHandler.GetBriefing)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"gateway_mode", cfg.Gateway.Mode,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err.Error())
	}
}
