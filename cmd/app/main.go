// @title CraftMarket API
// @version 1.0
// @description Craft profitability, bank opportunities and profession leveling plans from observed market prices.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/CraftMarket_Go/docs"
	"github.com/osse101/CraftMarket_Go/internal/bootstrap"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/database"
	"github.com/osse101/CraftMarket_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)
	slog.Debug(bootstrap.LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"cost_max_layers", cfg.CostMaxLayers,
		"request_timeout", cfg.RequestTimeout)

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxIdleTime,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		return err
	}
	slog.Info(bootstrap.LogMsgDatabaseConnected, "host", cfg.DBHost, "name", cfg.DBName)

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	} else {
		slog.Info(bootstrap.LogMsgMigrationsSkipped)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos)
	slog.Info(bootstrap.LogMsgServicesReady)

	srv := server.NewServer(bootstrap.ServerOptions(cfg), dbPool, services)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		dbPool.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
