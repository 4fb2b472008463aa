package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finvoice/internal/config"
	"finvoice/internal/news"
	"finvoice/internal/services"
	"finvoice/internal/voice"
)

// briefingFallback is spoken when the news source cannot be reached so the
// session still opens with something useful
const briefingFallback = "I apologize, but I'm having trouble fetching the latest news. Would you like me to tell you about technology and AI in general?"

// Session launcher: assembles the morning briefing and opens an outbound
// voice call that greets the caller with it. The call stays up until the
// process receives an interrupt.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	metrics := services.NewPrometheusMetrics()
	voiceClient, err := voice.NewClient(cfg.Voice, metrics)
	if err != nil {
		logger.Error("Failed to create voice client", "error", err.Error())
		os.Exit(1)
	}

	ctx := context.Background()
	firstMessage := services.NewResponseGenerator().WelcomeMessage()

	if cfg.BriefingEnabled() {
		newsClient, err := news.NewClient(cfg.News)
		if err != nil {
			logger.Error("Failed to create news client", "error", err.Error())
			os.Exit(1)
		}

		briefingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		briefing, _, err := services.NewBriefingService(newsClient, metrics).DailyBriefing(briefingCtx)
		cancel()
		if err != nil {
			logger.Warn("Briefing assembly failed, using fallback greeting", "error", err.Error())
			firstMessage = briefingFallback
		} else {
			firstMessage = briefing
		}
	} else {
		logger.Warn("NEWSAPI_KEY not set, greeting without a briefing")
	}

	logger.Info("Starting voice session", "first_message", firstMessage)
	session, err := voiceClient.StartSession(ctx, firstMessage)
	if err != nil {
		logger.Error("Failed to start voice session", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("Voice session started", "session_id", session.ID)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Stopping voice session", "session_id", session.ID)
	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := voiceClient.StopSession(stopCtx, session.ID); err != nil {
		logger.Error("Failed to stop voice session", "error", err.Error())
	}
}
