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

	"github.com/modateam/shopcore/internal/catalog"
	"github.com/modateam/shopcore/internal/config"
	"github.com/modateam/shopcore/internal/database"
	"github.com/modateam/shopcore/internal/database/postgres"
	"github.com/modateam/shopcore/internal/gacha"
	"github.com/modateam/shopcore/internal/handler"
	"github.com/modateam/shopcore/internal/server"
	"github.com/modateam/shopcore/internal/shop"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime,
	)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewShopRepository(pool)
	catalogSvc := catalog.NewService(repo, catalog.DefaultTTL, nil)
	shopSvc := shop.NewService(repo, catalogSvc, gacha.NewLockedRand(time.Now().UnixNano()))

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, shopSvc)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
