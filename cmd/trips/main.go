package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/config"
	"github.com/piresc/armada/internal/pkg/database"
	"github.com/piresc/armada/internal/pkg/health"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/internal/pkg/server"
	"github.com/piresc/armada/services/trips/handler"
	"github.com/piresc/armada/services/trips/repository"
	"github.com/piresc/armada/services/trips/usecase"
)

func main() {
	appName := "trips-service"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repository
	tripRepo := repository.NewTripRepo(postgresClient.GetDB())

	// Initialize usecase
	tripUC := usecase.NewTripUC(tripRepo, configs)

	// Initialize handlers
	tripHandler := handler.NewHandler(tripUC, natsClient)

	// Initialize NATS consumers
	if err := tripHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))

	// Health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	tripHandler.RegisterRoutes(e)

	// Component cleanup on shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("postgres", func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register("nats", func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register("consumers", func(ctx context.Context) error {
		tripHandler.Close()
		return nil
	})

	// Start server, blocking until a shutdown signal arrives
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	logger.Info("Server exiting gracefully", logger.String("app", appName))
}
