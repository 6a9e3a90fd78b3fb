package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mortgage-engine/config"
	httpLayer "mortgage-engine/http"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cache, err := newCache(cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer cache.close()

	engine := service.NewEngine(cache.repo, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpLayer.NewRouter(engine, rateLimiter, httpLayer.NewMetrics(), cache.health, logger.Named("http")),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Server.Addr), zap.String("cache", cfg.Cache.Backend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

// quoteCache is the configured cache backend plus its health check and
// cleanup. repo is nil when caching is disabled.
type quoteCache struct {
	repo   repository.CacheRepository
	health httpLayer.HealthCheck
	close  func()
}

func newCache(cfg config.CacheConfig, logger *zap.Logger) (quoteCache, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.CacheNone:
		return quoteCache{close: func() {}}, nil
	case config.CacheMemory:
		memoryCache, err := repository.NewMemoryCache(cfg.MaxEntries, cfg.TTL)
		if err != nil {
			return quoteCache{}, err
		}
		return quoteCache{repo: memoryCache, close: func() {}}, nil
	case config.CacheRedis:
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL)
		if err := redisCache.Ping(); err != nil {
			// Quotes are still computed while Redis is down; /healthz reports it.
			logger.Warn("redis unreachable at startup", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		return quoteCache{
			repo:   redisCache,
			health: redisCache.Ping,
			close: func() {
				if err := redisCache.Close(); err != nil {
					logger.Warn("failed to close redis client", zap.Error(err))
				}
			},
		}, nil
	default:
		return quoteCache{}, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
