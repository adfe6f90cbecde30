package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/config"
	"github.com/yukikurage/shift-schedule-api/internal/database"
	"github.com/yukikurage/shift-schedule-api/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shift-schedule-api",
		Short:         "Staff shift scheduling API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations and start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Run database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate()
			},
		},
	)

	return root
}

// bootstrap loads configuration, builds the logger and opens a migrated database.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	if err := database.Migrate(db, log); err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func runMigrate() error {
	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	log.Info("migrations applied")
	return nil
}
