// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/checkout"
	"github.com/your-org/storefront-engine/internal/domain/session"
	"github.com/your-org/storefront-engine/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront-engine/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-engine/internal/interfaces/http"
	"github.com/your-org/storefront-engine/internal/interfaces/http/routes"
	"github.com/your-org/storefront-engine/internal/pkg/auth"
	"github.com/your-org/storefront-engine/internal/pkg/logger"
	"github.com/your-org/storefront-engine/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(cfg.Logging)
	logr.WithField("environment", cfg.App.Environment).
		Infof("Starting %s v%s", cfg.App.Name, cfg.App.Version)

	// Connect to database
	db, err := postgres.NewConnection(cfg, logr)
	if err != nil {
		logr.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg, logr)
	if err != nil {
		logr.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB(), logr)

	if err := migration.RunAutoMigrations(); err != nil {
		logr.WithError(err).Fatal("Database migration failed")
	}

	if err := migration.CreateIndexes(); err != nil {
		logr.WithError(err).Warn("Index creation failed")
	}

	// Seed a sample catalog in development
	if cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			logr.WithError(err).Warn("Data seeding failed")
		}
	}

	catalogService := catalog.NewService(db.GetDB(), redisClient, cfg, logr)
	sessions := session.NewManager(cfg.Session, logr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.Run(ctx)

	server := http.NewServer(&routes.Services{
		Config:       cfg,
		Log:          logr,
		Catalog:      catalogService,
		CatalogAdmin: catalogService,
		Sessions:     sessions,
		Checkout:     checkout.NewService(catalogService, cfg, logr),
		PDF:          pdf.NewService(cfg),
		JWT:          auth.NewJWTManager(cfg),
		Passwords:    auth.NewPasswordManager(cfg),
	}, redisClient.GetClient(), map[string]http.HealthChecker{
		"database": db,
		"redis":    redisClient,
	})

	logr.Info("All systems operational")

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logr.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("Shutting down gracefully")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logr.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logr.WithField("open_sessions", sessions.Count()).Info("Server shutdown completed")
}
