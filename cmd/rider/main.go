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
	"github.com/buspulse/buspulse/internal/pkg/middleware"
	natspkg "github.com/buspulse/buspulse/internal/pkg/nats"
	"github.com/buspulse/buspulse/internal/pkg/server"
	alertgateway "github.com/buspulse/buspulse/services/alerts/gateway"
	alerthttp "github.com/buspulse/buspulse/services/alerts/handler/http"
	alertusecase "github.com/buspulse/buspulse/services/alerts/usecase"
	monitorgw "github.com/buspulse/buspulse/services/monitor/gateway/http"
	monitorhttp "github.com/buspulse/buspulse/services/monitor/handler/http"
	monitorusecase "github.com/buspulse/buspulse/services/monitor/usecase"
	routehttp "github.com/buspulse/buspulse/services/routes/handler/http"
	routerepository "github.com/buspulse/buspulse/services/routes/repository"
	routeusecase "github.com/buspulse/buspulse/services/routes/usecase"
)

func main() {
	appName := "rider-service"
	configs := config.InitConfig(".env")

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize Postgres
	db, err := database.NewPostgresDB(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Route reference data
	routeRepo := routerepository.NewRouteRepository(db)
	routeUC := routeusecase.NewRouteUC(routeRepo)
	routeHandler := routehttp.NewRouteHandler(routeUC)

	// Freshness monitor, polling the telemetry read API
	fixClient := monitorgw.NewFixClient(
		configs.Services.TelemetryServiceURL,
		time.Duration(configs.Monitor.PollIntervalSec)*time.Second,
	)
	tracker := monitorusecase.NewFreshnessTracker(fixClient, configs.Monitor)
	monitorHandler := monitorhttp.NewMonitorHandler(tracker, routeUC)

	// Arrival alerts through the notification facility
	notifyGW := alertgateway.NewNotifyGateway(natsClient)
	alertUC := alertusecase.NewAlertUC(notifyGW, configs.Alerts)
	alertHandler := alerthttp.NewAlertHandler(alertUC, routeUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger())

	e.GET("/ping", health.NewPingHandler(appName))

	v1 := e.Group("/v1")
	v1.GET("/routes", routeHandler.ListRoutes)
	v1.GET("/routes/:id", routeHandler.GetRoute)
	v1.GET("/stops/nearest", routeHandler.NearestStop)
	v1.POST("/routes/:id/monitor", monitorHandler.StartMonitor)
	v1.DELETE("/routes/:id/monitor", monitorHandler.StopMonitor)
	v1.GET("/routes/:id/freshness", monitorHandler.GetFreshness)
	v1.POST("/alerts", alertHandler.CreateAlert)

	// Register cleanup for shutdown
	shutdownManager := server.NewShutdownManager()
	shutdownManager.Register(func(ctx context.Context) error {
		tracker.StopAll()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return db.Close()
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
