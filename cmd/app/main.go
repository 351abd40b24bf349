package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/AnglerBot_Go/internal/config"
	"github.com/osse101/AnglerBot_Go/internal/fishing"
	"github.com/osse101/AnglerBot_Go/internal/handler"
	"github.com/osse101/AnglerBot_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	catchService := fishing.NewService(cfg.Overrides(), nil)

	srv := server.NewServer(cfg.Port, cfg.Version, cfg.Environment, catchService)

	// Shut down cleanly on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}
}
