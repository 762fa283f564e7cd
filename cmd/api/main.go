package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/lotflow-backend/api/routes"
	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/inventory"
	"github.com/angelmondragon/lotflow-backend/internal/invoices"
	"github.com/angelmondragon/lotflow-backend/internal/ledger"
	"github.com/angelmondragon/lotflow-backend/internal/memos"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/stageevents"
	"github.com/angelmondragon/lotflow-backend/pkg/config"
	"github.com/angelmondragon/lotflow-backend/pkg/db"
	"github.com/angelmondragon/lotflow-backend/pkg/instance"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
	"github.com/angelmondragon/lotflow-backend/pkg/metrics"
	"github.com/angelmondragon/lotflow-backend/pkg/migrate"
	"github.com/angelmondragon/lotflow-backend/pkg/redis"
	"github.com/angelmondragon/lotflow-backend/pkg/security"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	runErr := run(cfg, logg, dbClient, redisClient)
	if err := multierr.Combine(redisClient.Close(), dbClient.Close()); err != nil {
		logg.Error(context.Background(), "error closing connections", err)
	}
	if runErr != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", runErr)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger, dbClient *db.Client, redisClient *redis.Client) error {
	ctx := context.Background()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	transitions := metrics.NewTransitionMetrics(registry)

	passcode, err := security.NewPasscodeVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	auditService, err := audit.NewService(audit.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}

	memoService, err := memos.NewService(memos.NewRepository(dbClient.DB()), dbClient, auditService, transitions, logg)
	if err != nil {
		return err
	}

	stageEventService, err := stageevents.NewService(stageevents.NewRepository(dbClient.DB()), dbClient, auditService)
	if err != nil {
		return err
	}

	productionService, err := production.NewService(memoService, production.WithEventSource(stageEventService))
	if err != nil {
		return err
	}

	ledgerService, err := ledger.NewService(ledger.NewRepository(dbClient.DB()), dbClient, auditService, transitions)
	if err != nil {
		return err
	}

	inventoryService, err := inventory.NewService(inventory.NewRepository(dbClient.DB()), dbClient, auditService, transitions)
	if err != nil {
		return err
	}

	invoiceService, err := invoices.NewService(invoices.NewRepository(dbClient.DB()), dbClient, auditService)
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := instance.GetID()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
		"driver":   db.Dialect(cfg.DB),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			passcode,
			memoService,
			productionService,
			ledgerService,
			inventoryService,
			invoiceService,
			stageEventService,
			auditService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
