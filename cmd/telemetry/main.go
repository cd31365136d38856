package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/buspulse/buspulse/internal/pkg/config"
	"github.com/buspulse/buspulse/internal/pkg/database"
	"github.com/buspulse/buspulse/internal/pkg/health"
	"github.com/buspulse/buspulse/internal/pkg/logger"
	"github.com/buspulse/buspulse/internal/pkg/metrics"
	"github.com/buspulse/buspulse/internal/pkg/middleware"
	natspkg "github.com/buspulse/buspulse/internal/pkg/nats"
	"github.com/buspulse/buspulse/internal/pkg/server"
	"github.com/buspulse/buspulse/services/telemetry/gateway"
	"github.com/buspulse/buspulse/services/telemetry/handler"
	telemetryhttp "github.com/buspulse/buspulse/services/telemetry/handler/http"
	"github.com/buspulse/buspulse/services/telemetry/repository"
	"github.com/buspulse/buspulse/services/telemetry/usecase"
)

func main() {
	appName := "telemetry-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize metrics
	collector := metrics.NewCollector()

	// Initialize repository
	fixRepo := repository.NewFixRepository(redisClient)

	// Initialize gateway
	telemetryGW := gateway.NewNATSGateway(natsClient)

	// Initialize usecase
	telemetryUC := usecase.NewTelemetryUC(fixRepo, telemetryGW, collector)

	// Initialize handlers
	telemetryHandler := telemetryhttp.NewTelemetryHandler(telemetryUC)
	h := handler.NewHandler(telemetryHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger())

	e.GET("/ping", health.NewPingHandler(appName))
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	h.RegisterRoutes(e)

	// Register cleanup for shutdown
	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		logger.Error("Cleanup failed", logger.Err(err))
	}
}
