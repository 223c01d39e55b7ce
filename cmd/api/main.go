package main

import (
	"fmt"
	"os"
	"time"

	"reconstruction/internal/config"
	"reconstruction/internal/database"
	"reconstruction/internal/logger"
	"reconstruction/internal/router"
)

// @title           Renovation Cost Ledger API
// @version         1.0
// @description     Tracks renovation spend by category, article and payment, with invoice coverage and dashboard views.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared secret configured with API_KEY.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set; every /api route except /api/health will answer 503")
	}

	svc := router.NewServices(dbManager.DB(), time.Now, appConfig.Location())
	r := router.New(appConfig, svc)

	log.Infof("Starting cost ledger server on port %s (driver %s, timezone %s)",
		appConfig.Port, appConfig.DBDriver, appConfig.Timezone)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
