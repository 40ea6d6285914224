package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/angkutin/tracking/internal/pkg/config"
	"github.com/angkutin/tracking/internal/pkg/database"
	"github.com/angkutin/tracking/internal/pkg/health"
	"github.com/angkutin/tracking/internal/pkg/logger"
	natspkg "github.com/angkutin/tracking/internal/pkg/nats"
	"github.com/angkutin/tracking/internal/pkg/server"
	wspkg "github.com/angkutin/tracking/internal/pkg/websocket"
	"github.com/angkutin/tracking/services/tracking/gateway"
	"github.com/angkutin/tracking/services/tracking/handler"
	"github.com/angkutin/tracking/services/tracking/repository"
	"github.com/angkutin/tracking/services/tracking/usecase"
)

const appName = "tracking-service"

func main() {
	configs := config.InitConfig(".env")

	// New Relic is optional; the logger runs without it
	var nrApp *newrelic.Application
	if configs.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(appName),
			newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("Failed to initialize New Relic: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	trackingRepo := repository.NewTrackingRepository(redisClient)
	trackingGW := gateway.NewNATSGateway(natsClient)
	routeProvider := gateway.NewFailoverRouteProvider(configs.RouteProvider)
	trackingUC := usecase.NewTrackerUC(trackingRepo, trackingGW, routeProvider, configs)

	wsManager := wspkg.NewManager(configs.JWT)
	trackingHandler := handler.NewTrackingHandler(trackingUC, natsClient, wsManager, configs)

	if err := trackingHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	healthChecker := health.NewChecker(appName, redisClient, natsClient)
	healthChecker.Register(e)
	trackingHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		trackingHandler.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	shutdownManager.Shutdown(shutdownCtx)
}
