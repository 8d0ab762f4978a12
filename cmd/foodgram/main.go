package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mign0n/foodgram-project/internal/api"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/log"
	"github.com/mign0n/foodgram-project/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	bootLogger := log.New(nil)

	conf, err := config.LoadConfig()
	if err != nil {
		bootLogger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := log.New(&slog.HandlerOptions{Level: log.ParseLevel(conf.Server.LogLevel)})

	db, err := setup.Database(setupCtx, conf, logger)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	e, err := env.New(logger, db, conf)
	if err != nil {
		logger.Error("failed to build environment", slog.Any("error", err))
		os.Exit(1)
	}

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, e); err != nil {
		logger.Error("failed to setup admin", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(ctx, e); err != nil {
		logger.Error("API failed", slog.Any("error", err))
		os.Exit(1)
	}
}
