package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"patient-portal-assistant/config"
	_ "patient-portal-assistant/docs" // Swagger docs
	"patient-portal-assistant/internal/httpserver"
	"patient-portal-assistant/internal/metrics"
	"patient-portal-assistant/internal/middleware"
	"patient-portal-assistant/internal/session"
	"patient-portal-assistant/pkg/log"
	"patient-portal-assistant/pkg/postgres"
)

// @title       Patient Portal Assistant API
// @description Rule-based symptom assistant for the patient portal: symptom extraction, condition suggestions, appointment routing and interaction history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Patient Portal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres + migrations
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:            cfg.Postgres.DSN,
		MaxOpenConns:   cfg.Postgres.MaxOpenConns,
		MaxIdleConns:   cfg.Postgres.MaxIdleConns,
		ConnectRetries: cfg.Postgres.ConnectRetries,
		RetryDelay:     cfg.Postgres.RetryDelay,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info(ctx, "Connected to Postgres")

	if err := postgres.Migrate(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN); err != nil {
		logger.Error(ctx, "Failed to apply migrations: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Migrations applied from %s", cfg.Postgres.MigrationsPath)

	// 4. Conversation state + metrics
	sessions := session.New(session.Config{
		Capacity: cfg.Assistant.SessionCapacity,
		TTL:      cfg.Assistant.SessionTTL,
	})
	m := metrics.New()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      db,
		Metrics:         m,
		Sessions:        sessions,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Capacity:       cfg.RateLimit.Capacity,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
