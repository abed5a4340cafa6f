package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"openform/internal/app"
	"openform/internal/config"
	"openform/internal/logging"
	"openform/internal/server"
)

func main() {
	configPath := flag.String("config", os.Getenv("OPENFORM_CONFIG"), "YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("init error", zap.Error(err))
	}
	defer a.Close()

	var store server.WordStore
	if a.Dict != nil {
		store = a.Dict
	}
	srv := server.New(a.Pipeline, store, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Listen(cfg.HTTPAddr) }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}
}
