package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/contracts-service/internal/config"
	"github.com/nurpe/contracts-service/internal/db"
	"github.com/nurpe/contracts-service/internal/excel"
	httphandler "github.com/nurpe/contracts-service/internal/http"
	"github.com/nurpe/contracts-service/internal/logger"
	"github.com/nurpe/contracts-service/internal/pdf"
	"github.com/nurpe/contracts-service/internal/repository"
	"github.com/nurpe/contracts-service/internal/service"
)

type store interface {
	service.Store
	Health(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}

	clock := time.Now
	window := cfg.Renewals.WindowDays
	handler := httphandler.NewHandler(httphandler.Services{
		Customers:     service.NewCustomerService(st, clock, log),
		Contracts:     service.NewContractService(st, clock),
		Notifications: service.NewNotificationService(st),
		Dashboard:     service.NewDashboardService(st, clock, window),
		Reports:       service.NewReportService(st, excel.NewGenerator(), pdf.NewGenerator(), clock, window),
	}, log)

	router := httphandler.NewRouter(handler, httphandler.RouterOptions{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Health:         st,
		Metrics:        httphandler.NewMetrics(),
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("driver", cfg.Store.Driver).Msg("starting contracts service")

	if err := httphandler.Serve(ctx, addr, router, cfg.HTTP.ShutdownTimeout, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store, error) {
	var st store
	if cfg.Store.Driver == config.DriverMemory {
		st = repository.NewMemoryStore(repository.WithLatency(cfg.Store.Latency))
	} else {
		database, err := db.New(cfg, log)
		if err != nil {
			return nil, err
		}
		st = repository.NewRepositories(database)
	}

	if cfg.Store.Seed {
		if err := repository.Seed(ctx, st, time.Now()); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}
	return st, nil
}
