package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/escrow/internal/pkg/circuitbreaker"
	"github.com/piresc/escrow/internal/pkg/config"
	"github.com/piresc/escrow/internal/pkg/database"
	"github.com/piresc/escrow/internal/pkg/health"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/middleware"
	natspkg "github.com/piresc/escrow/internal/pkg/nats"
	nrpkg "github.com/piresc/escrow/internal/pkg/newrelic"
	"github.com/piresc/escrow/internal/pkg/retry"
	"github.com/piresc/escrow/internal/pkg/server"
	"github.com/piresc/escrow/internal/utils"
	"github.com/piresc/escrow/services/escrow/gateway"
	"github.com/piresc/escrow/services/escrow/handler"
	"github.com/piresc/escrow/services/escrow/repository"
	"github.com/piresc/escrow/services/escrow/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "escrow-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/escrow.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error { return redisClient.Close() })

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	shutdown.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	breakers := circuitbreaker.NewManager(zapLogger)

	// Initialize repository
	escrowRepo := repository.NewEscrowRepository(configs, postgresClient.GetDB())
	attempts := repository.NewAttemptLimiter(redisClient.GetClient(),
		configs.Escrow.PickupMaxAttempts, configs.Escrow.PickupAttemptTTL)

	// Initialize gateway
	escrowGW, err := gateway.NewEscrowGW(configs, breakers, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment gateway", zap.Error(err))
	}

	// Initialize usecase
	escrowUC := usecase.NewEscrowUC(configs, escrowRepo, attempts, escrowGW.Payment, escrowGW.Publisher,
		usecase.WithRetrier(retry.NewWithDefaults(zapLogger)),
		usecase.WithNewRelic(nrApp),
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestContext(appName))
	e.Use(logger.AccessLog(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger, breakers)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))
	healthService.AddChecker("redis", health.NewPingChecker(redisClient))
	healthService.AddChecker("nats", health.NewConnectionChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	handler.NewHandler(escrowUC, configs, redisClient.GetClient()).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Cleanup finished with errors", zap.Error(err))
	}
}
