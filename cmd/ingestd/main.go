package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bayasdev/power-grid-balance/internal/adapter"
	"github.com/bayasdev/power-grid-balance/internal/api"
	"github.com/bayasdev/power-grid-balance/internal/config"
	"github.com/bayasdev/power-grid-balance/internal/ingest"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/providers/ree"
	"github.com/bayasdev/power-grid-balance/internal/scheduler"
	"github.com/bayasdev/power-grid-balance/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIngestConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "ingestd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting power-grid-balance ingestd")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate schema", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	clock := adapter.NewClock()
	dataStore := store.NewPGStore(db, clock)
	httpClient := adapter.NewHTTPClient(cfg.REE.RequestTimeout)

	reeClient := ree.NewClient(httpClient, clock, ree.Config{
		BaseURL:        cfg.REE.BaseURL,
		MaxRetries:     cfg.REE.MaxRetries,
		RetryBaseDelay: cfg.REE.RetryBaseDelay,
	})
	pipeline := ingest.NewService(reeClient, dataStore, clock)

	sched := scheduler.New(scheduler.Config{
		CurrentDaySpec:  cfg.Scheduler.CurrentDaySpec,
		PreviousDaySpec: cfg.Scheduler.PreviousDaySpec,
		HistoricalSpec:  cfg.Scheduler.HistoricalSpec,
		CleanupSpec:     cfg.Scheduler.CleanupSpec,
		RetentionDays:   cfg.Scheduler.RetentionDays,
	}, pipeline)
	if err := sched.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start scheduler", zap.Error(err))
	}

	srv := api.New(api.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, dataStore, sched)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("ingestd stopped")
}
