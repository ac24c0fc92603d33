package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"autocorrect/internal/config"
	"autocorrect/internal/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("AUTOCORRECT_CONFIG"))
	if err != nil {
		server.NewLogger("error").Error("config", "error", err)
		os.Exit(1)
	}
	logger := server.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
