package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	mw "github.com/5w1tchy/bookshelf-api/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf-api/internal/api/router"
	"github.com/5w1tchy/bookshelf-api/internal/config"
	"github.com/5w1tchy/bookshelf-api/internal/logging"
	"github.com/5w1tchy/bookshelf-api/internal/platform/otel"
	"github.com/5w1tchy/bookshelf-api/internal/platform/redisclient"
	"github.com/5w1tchy/bookshelf-api/internal/store/bookshelf"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	for _, w := range cfg.HardeningWarnings() {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redisclient.New(cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		// Fail fast if Redis isn't reachable
		if err := redisclient.Ping(ctx, rdb, 3*time.Second); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		logger.Info("connected to redis")
	}

	registry := bookshelf.New()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           buildHandler(cfg, logger, rdb, router.Router(registry)),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", cfg.Addr, "tls", cfg.TLSCert != "")
		if cfg.TLSCert != "" {
			errCh <- server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(sctx)
}

// buildHandler wraps the router with the middleware chain; the first listed
// runs outermost. Rate limiting is on only when Redis is configured.
func buildHandler(cfg config.Config, logger *slog.Logger, rdb *redis.Client, h http.Handler) http.Handler {
	var tokenBucket, slidingWindow mw.Middleware
	if rdb != nil {
		tokenBucket = mw.NewRedisTokenBucket(rdb, cfg.RateLimit.RatePerSecond, cfg.RateLimit.Burst, mw.PerIPKey("rl:tb")).Middleware
		slidingWindow = mw.NewRedisSlidingWindow(rdb, cfg.RateLimit.WindowLimit, cfg.RateLimit.Window, mw.PerIPKey("rl:sw")).Middleware
	}

	return mw.Chain(h,
		mw.Recovery,
		mw.RequestID,
		mw.Tracing,
		mw.AccessLog(logger),
		mw.Cors(cfg.AllowedOrigins),
		mw.ResponseTimeMiddleware,
		mw.HPP(mw.DefaultHPPOptions()),
		tokenBucket,
		slidingWindow,
		mw.BodySizeLimit(cfg.MaxBodySize),
		mw.Compression,
		mw.SecurityHeaders,
	)
}
