package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"autocorrect/internal/config"
	"autocorrect/internal/corrector"
	"autocorrect/internal/customdict"
	"autocorrect/internal/vocab"
)

const shutdownTimeout = 10 * time.Second

// NewLogger builds the JSON logger used by the server.
func NewLogger(level string) *slog.Logger {
	lvl, _ := config.ParseLevel(level)
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// Bootstrap loads the dictionary, connects the custom dictionary and builds
// the service. The returned closer releases the Redis client.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*corrector.Service, func() error, error) {
	entries, stats, err := vocab.LoadFile(cfg.DictionaryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load dictionary: %w", err)
	}
	logger.Info("dictionary read", "path", cfg.DictionaryPath, "loaded", stats.Loaded, "skipped", stats.Skipped)

	closer := func() error { return nil }
	var dict corrector.WordSource
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cd := customdict.New(client, cfg.Redis.Key)
		if err := cd.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, custom words will fail until it is back", "addr", cfg.Redis.Addr, "error", err)
		}
		dict = cd
		closer = client.Close
	}

	svc, err := corrector.NewService(ctx, entries, dict, logger, cfg.Options()...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return svc, closer, nil
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	svc, closeDict, err := Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDict()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           New(svc, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
