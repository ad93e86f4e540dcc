package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/escrow/internal/pkg/config"
	"github.com/piresc/escrow/internal/pkg/database"
	"github.com/piresc/escrow/internal/pkg/logger"
	natspkg "github.com/piresc/escrow/internal/pkg/nats"
	nrpkg "github.com/piresc/escrow/internal/pkg/newrelic"
	"github.com/piresc/escrow/internal/pkg/retry"
	"github.com/piresc/escrow/services/escrow"
	"github.com/piresc/escrow/services/escrow/gateway"
	"github.com/piresc/escrow/services/escrow/repository"
	"github.com/piresc/escrow/services/escrow/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "escrow-reconciler"
	configPath := config.GetEnv("CONFIG_PATH", "config/escrow.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	publisher, err := gateway.NewNATSPublisher(natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize publisher", zap.Error(err))
	}

	// The sweep never opens payment orders or checks pickup codes
	escrowRepo := repository.NewEscrowRepository(configs, postgresClient.GetDB())
	escrowUC := usecase.NewEscrowUC(configs, escrowRepo, nil, nil, publisher,
		usecase.WithRetrier(retry.NewWithDefaults(zapLogger)),
		usecase.WithNewRelic(nrApp),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Starting reconciliation worker",
		zap.String("app", appName),
		zap.Duration("interval", configs.Escrow.SweepInterval))

	run(ctx, escrowUC, configs.Escrow.SweepInterval)

	zapLogger.Info("Reconciliation worker stopped")
}

// run sweeps once at start and then on every tick until ctx is cancelled.
// A failed run is logged and retried on the next tick.
func run(ctx context.Context, uc escrow.EscrowUC, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := uc.RunReconciliationSweep(ctx); err != nil && ctx.Err() == nil {
			logger.Error("Reconciliation run failed", logger.Err(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
