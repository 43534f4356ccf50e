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
	"github.com/piresc/armada/internal/pkg/websocket"
	"github.com/piresc/armada/services/geofence/gateway"
	"github.com/piresc/armada/services/geofence/handler"
	"github.com/piresc/armada/services/geofence/repository"
	"github.com/piresc/armada/services/geofence/usecase"
)

func main() {
	appName := "geofence-service"
	configPath := "config/geofence.env"
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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Alert producer shares the consumer connection
	producer := nats.NewProducerWithConn(natsClient.GetConn())

	// WebSocket manager for the live alert feed
	wsManager := websocket.NewManager()

	// Initialize repository
	geofenceRepo := repository.NewGeofenceRepository(redisClient)

	// Initialize gateway
	geofenceGW := gateway.NewGeofenceGW(producer, wsManager, zapLogger, configs.Geofence.PublishMaxRetry)

	// Initialize usecase
	geofenceUC := usecase.NewGeofenceUC(geofenceRepo, geofenceGW, configs)

	// Initialize handlers
	geofenceHandler := handler.NewHandler(geofenceUC, geofenceRepo, natsClient, wsManager)

	// Initialize NATS consumers
	if err := geofenceHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))

	// Health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	geofenceHandler.RegisterRoutes(e)

	// Component cleanup on shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register("nats", func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register("consumers", func(ctx context.Context) error {
		geofenceHandler.Close()
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
