package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/vancomm/minesweeper-mind/internal/app"
	"github.com/vancomm/minesweeper-mind/internal/config"
	"github.com/vancomm/minesweeper-mind/internal/mines"
)

func newLogger() *slog.Logger {
	level := config.LogLevel()
	if config.Development() {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := config.LoadEnv(); err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	logger := newLogger()
	mines.Log = logger.With(slog.String("component", "mines"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(logger)
	if err != nil {
		logger.Error("failed to configure app", "error", err)
		os.Exit(1)
	}

	if err := a.Start(ctx); err != nil {
		logger.Error("failed to start app", "error", err)
		os.Exit(1)
	}
}
