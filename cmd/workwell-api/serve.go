package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/cache"
	"github.com/JonnyWalker81/workwell/backend/internal/config"
	"github.com/JonnyWalker81/workwell/backend/internal/handlers"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/metrics"
	"github.com/JonnyWalker81/workwell/backend/internal/middleware"
	"github.com/JonnyWalker81/workwell/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting WorkWell API server", logger.String("env", cfg.Server.Env))

	data, err := openDataLayer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer data.Close()

	var m *metrics.Manager
	if cfg.Metrics.Enabled {
		m = metrics.NewManager(metrics.WithNamespace(cfg.Metrics.Namespace))
	}

	cacheStore, err := openCacheStore(ctx, cfg, data, log)
	if err != nil {
		return err
	}
	defer cacheStore.Close()

	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		resultCache = cache.NewResultCache(cacheStore, m)
	}

	opts := []service.Option{
		service.WithLookbackDays(cfg.Analysis.LookbackDays),
		service.WithMetrics(m),
	}
	checkinService := service.NewCheckinService(data.checkinRepo, data.alertRepo, opts...)
	burnoutService := service.NewBurnoutService(data.checkinRepo, data.alertRepo, opts...)
	alertService := service.NewAlertService(data.alertRepo, opts...)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, "api")
	defer limiter.Stop()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := handlers.RouterConfig{
		Env:              cfg.Server.Env,
		Logger:           log,
		Metrics:          m,
		MetricsPath:      cfg.Metrics.Path,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Verifier:         data.supabaseAuth,
		RateLimiter:      limiter,
		IdempotencyStore: cacheStore,
		Checkins:         checkinService,
		CachedCheckins:   service.NewCachedCheckinService(checkinService, resultCache),
		Burnout:          burnoutService,
		Alerts:           alertService,
	}
	if data.db != nil {
		routerCfg.DB = data.db
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.NewRouter(routerCfg),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openCacheStore returns the store backing the result cache and idempotency
// records. A SQL store also gets a background purge of expired rows.
func openCacheStore(ctx context.Context, cfg *config.Config, data *dataLayer, log logger.Logger) (cache.Store, error) {
	if cfg.Cache.Backend != config.CacheSQL {
		return cache.NewMemoryStore(cfg.Cache.CleanupInterval), nil
	}
	if data.db == nil {
		return nil, fmt.Errorf("cache backend %q requires a SQL storage backend", config.CacheSQL)
	}

	s := cache.NewSQLStore(data.db)
	go purgeExpired(ctx, s, cfg.Cache.CleanupInterval, log)
	return s, nil
}

func purgeExpired(ctx context.Context, s *cache.SQLStore, interval time.Duration, log logger.Logger) {
	if interval <= 0 {
		interval = cache.DefaultCleanupInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		n, err := s.PurgeExpired(ctx)
		if err != nil {
			log.Warn("cache purge failed", logger.Err(err))
			continue
		}
		if n > 0 {
			log.Debug("cache purge completed", logger.Int64("purged", n))
		}
	}
}
