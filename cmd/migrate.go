package main

import (
	"github.com/spf13/cobra"

	"adgate/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return err
	}
	logger.Info("migrations applied successfully")
	return nil
}

