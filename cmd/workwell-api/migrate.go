package main

import (
	"fmt"

	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/JonnyWalker81/workwell/backend/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply the embedded schema migrations to the configured SQL storage backend.
By default every pending migration is applied. --down rolls everything back and
--version migrates up or down to a specific version.`,
	RunE: runMigrate,
}

var (
	migrateDown    bool
	migrateVersion int
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back every migration")
	migrateCmd.Flags().IntVar(&migrateVersion, "version", 0, "Migrate to this version")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Storage.IsSQL() {
		return fmt.Errorf("migrate requires a SQL storage backend, got %q", cfg.Storage.Backend)
	}
	if migrateDown && migrateVersion > 0 {
		return fmt.Errorf("--down and --version are mutually exclusive")
	}

	backend, err := store.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		return err
	}

	target := store.Latest
	switch {
	case migrateDown:
		target = 0
	case migrateVersion > 0:
		target = migrateVersion
	}

	res, err := store.Migrate(cmd.Context(), backend, cfg.Storage.DSN, target)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("migration finished",
		logger.String("backend", string(backend)),
		logger.Int("from", int(res.From)),
		logger.Int("to", int(res.To)),
		logger.Bool("changed", res.Changed),
	)
	if !res.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), "no change, schema at version %d\n", res.To)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrated %s from version %d to %d\n", backend, res.From, res.To)
	return nil
}
