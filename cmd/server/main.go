/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the staffing server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env, parse command-line flags
  2. Load and validate config (defaults, YAML file, STAFFING_* env)
  3. Create the in-memory registry and API handler
  4. Optionally seed a demo scenario
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config    YAML config file (optional)
  -port      HTTP server port, overrides config
  -scenario  Demo scenario to load on startup, overrides config

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (server.shutdown_timeout)
  3. Exit

EXAMPLES:
  # Run with defaults
  ./server

  # Run with a config file and a seeded scenario
  ./server -config=staffing.yaml -scenario=small-team

  # Run on different port
  STAFFING_PORT=3000 ./server

ENVIRONMENT:
  STAFFING_PORT, STAFFING_LOG_LEVEL, STAFFING_LOG_FORMAT,
  STAFFING_SCENARIO, STAFFING_ALLOWED_ORIGINS

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Settings
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/warp/staffing/api"
	"github.com/warp/staffing/config"
	"github.com/warp/staffing/logging"
	"github.com/warp/staffing/store/memory"
)

func main() {
	_ = godotenv.Load()

	// Flags
	configPath := flag.String("config", "", "YAML config file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	scenario := flag.String("scenario", "", "demo scenario to load on startup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *scenario != "" {
		cfg.Seed.Scenario = *scenario
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	slog.SetDefault(logger)
	appLog := logger.With(logging.FieldComponent, logging.ComponentApp)

	// Initialize handler
	handler := api.NewHandler(memory.NewRegistry(), logger)

	if cfg.Seed.Scenario != "" {
		results, err := handler.LoadScenarioByID(context.Background(), cfg.Seed.Scenario)
		if err != nil {
			appLog.Error("failed to load scenario", "scenario", cfg.Seed.Scenario, logging.FieldError, err)
			os.Exit(1)
		}
		appLog.Info("scenario loaded", "scenario", cfg.Seed.Scenario, "steps", len(results))
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.NewRouter(handler, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info("server starting", "addr", fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server failed", logging.FieldError, err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("server forced to shutdown", logging.FieldError, err)
		os.Exit(1)
	}

	appLog.Info("server stopped")
}
