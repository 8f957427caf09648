package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/database"
	"github.com/pageza/pantrychef/backend/internal/observability"
	"github.com/pageza/pantrychef/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.UseJSONLogs(), os.Stdout)
	metrics := observability.NewMetrics(nil)

	// Channel to listen for an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		// Rate limiting is optional; the API still serves without it.
		logger.WithError(err).Warn("continuing without Redis")
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv, err := server.New(cfg, redisClient, metrics, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to build server")
	}

	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server error")
	}
	logger.Info("server stopped")
}
