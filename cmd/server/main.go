package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/config"
	"github.com/KirkDiggler/character-forge/internal/handlers/api"
	"github.com/KirkDiggler/character-forge/internal/logging"
	"github.com/KirkDiggler/character-forge/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeStores, err := services.NewProviderFromConfig(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to create services: %v", err)
	}
	defer closeStores()

	server, err := api.NewServer(api.Config{
		QuizService:    provider.QuizService,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	if err != nil {
		logrus.Fatalf("Failed to create server: %v", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("addr", cfg.HTTP.Addr).Info("character forge listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
