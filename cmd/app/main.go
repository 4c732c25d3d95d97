package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/GildedRose_Go/docs"
	"github.com/osse101/GildedRose_Go/internal/bootstrap"
	"github.com/osse101/GildedRose_Go/internal/catalog"
	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/database"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/scheduler"
	"github.com/osse101/GildedRose_Go/internal/server"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

const (
	workerCount     = 2
	workerQueueSize = 16
	shutdownTimeout = 30 * time.Second
)

// @title Gilded Rose Stock API
// @version 1.0
// @description Inventory aging service for the Gilded Rose inn.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	checkEnvironment(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Service exited with error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if _, err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		return err
	}

	if _, err := bootstrap.SyncCatalog(ctx, catalog.NewLoader(), cfg.CatalogPath, repos.Catalog, publisher); err != nil {
		return err
	}

	inventoryService := inventory.NewService(repos.Inventory, publisher,
		inventory.WithCacheConfig(inventory.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL}))
	if err := inventoryService.RefreshGauges(ctx); err != nil {
		slog.Warn("Initial gauge refresh failed", "error", err)
	}

	var tickWorker *worker.DailyTickWorker
	if cfg.DailyTickEnabled {
		tickWorker = worker.NewDailyTickWorker(inventoryService, cfg.DailyTickHour, cfg.TickLocation())
		tickWorker.Start()
	}

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule("stock_gauges", cfg.StockGaugeInterval, worker.NewStockGaugeJob(inventoryService))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		ServiceName:    cfg.ServiceName,
		DBPool:         dbPool,
		Inventory:      inventoryService,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case runErr = <-serverErr:
		slog.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		DailyTickWorker:    tickWorker,
		Scheduler:          sched,
		WorkerPool:         pool,
		InventoryService:   inventoryService,
		ResilientPublisher: publisher,
	})

	return runErr
}

// checkEnvironment reports .env problems; they are only fatal in production
func checkEnvironment(cfg *config.Config) {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if cfg.Environment == logger.EnvironmentProduction {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("Environment validation failed", "error", err)
		return
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
}
