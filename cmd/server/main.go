package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tradervijeth/Wiki-Forge/internal/api"
	"github.com/tradervijeth/Wiki-Forge/internal/config"
	"github.com/tradervijeth/Wiki-Forge/internal/monitoring"
	"github.com/tradervijeth/Wiki-Forge/internal/normalizer"
	"github.com/tradervijeth/Wiki-Forge/internal/processor"
	"github.com/tradervijeth/Wiki-Forge/internal/storage"
	"github.com/tradervijeth/Wiki-Forge/internal/wiki"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Ensure the output directory exists before serving requests
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Fatal("could not create output directory", zap.String("dir", cfg.OutputDir), zap.Error(err))
	}

	// Initialize Monitoring and Storage
	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	store := storage.NewFileStore()

	// Initialize Core Processor
	client := wiki.NewClient(cfg.APIBaseURL(), cfg.WikiUserAgent, time.Duration(cfg.FetchTimeout)*time.Second)
	proc := processor.New(client, normalizer.New(), store, metrics, logger)

	// Initialize API Server
	server := api.NewServer(cfg, proc, metrics, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
