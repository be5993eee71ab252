package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/events"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/router"
	"github.com/fsonmez/windpowerlib/internal/store"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)
	logger.Info("Curves service starting...",
		"version", Version, "commit", GitCommit, "build time", BuildTime)

	// Open turbine curve store (configurable backend)
	logger.Info("Opening curve store", "backend", cfg.Store.Backend)
	curveStore, err := store.NewStore(cfg.Store)
	if err != nil {
		logger.Fatal("Failed to open curve store", "error", err)
	}
	defer func() { _ = curveStore.Close() }()

	// Connect event publisher (configurable backend)
	var publisher events.Publisher
	if cfg.Events.Enabled {
		logger.Info("Connecting event publisher",
			"backend", cfg.Events.Backend, "subject", cfg.Events.Subject)
		publisher, err = events.NewPublisher(cfg.Events)
		if err != nil {
			logger.Fatal("Failed to connect event publisher", "error", err)
		}
		defer func() { _ = publisher.Close() }()
	}

	// Log authentication status
	if cfg.Auth.Enabled {
		logger.Info("API key authentication enabled", "num_keys", len(cfg.Auth.APIKeys))
	} else {
		logger.Warn("API key authentication DISABLED - all requests will be allowed")
	}

	// Initialize router
	app := router.New(logger, curveStore, publisher, *cfg)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
		logger.Info("Server listening", "address", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server stopped")
}
