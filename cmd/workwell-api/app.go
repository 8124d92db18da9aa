package main

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/config"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/repository"
	"github.com/JonnyWalker81/workwell/backend/internal/store"
	"github.com/JonnyWalker81/workwell/backend/pkg/supabase"
)

// dataLayer is the storage selected by configuration. db is nil for the
// Supabase backend.
type dataLayer struct {
	db           *store.DB
	checkinRepo  repository.CheckinRepository
	alertRepo    repository.AlertRepository
	supabaseAuth *supabase.Client
}

func (d *dataLayer) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// loadConfig loads configuration and installs the configured default logger
func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewSlogLogger(cfg.LoggerConfig())
	logger.SetDefault(log)
	return cfg, log, nil
}

// openDataLayer connects the configured storage backend, applying
// migrations first when storage.auto_migrate is set
func openDataLayer(ctx context.Context, cfg *config.Config, log logger.Logger) (*dataLayer, error) {
	client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	if !cfg.Storage.IsSQL() {
		log.Info("using supabase storage", logger.String("supabase_url", cfg.Supabase.URL))
		return &dataLayer{
			checkinRepo:  repository.NewCheckinRepository(client),
			alertRepo:    repository.NewAlertRepository(client),
			supabaseAuth: client,
		}, nil
	}

	backend, err := store.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.AutoMigrate {
		res, err := store.Migrate(ctx, backend, cfg.Storage.DSN, store.Latest)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate %s: %w", backend, err)
		}
		log.Info("migrations applied",
			logger.String("backend", string(backend)),
			logger.Int("from", int(res.From)),
			logger.Int("to", int(res.To)),
			logger.Bool("changed", res.Changed),
		)
	}

	db, err := store.Open(ctx, backend, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	log.Info("using sql storage", logger.String("backend", string(backend)))

	return &dataLayer{
		db:           db,
		checkinRepo:  repository.NewSQLCheckinRepository(db),
		alertRepo:    repository.NewSQLAlertRepository(db),
		supabaseAuth: client,
	}, nil
}
