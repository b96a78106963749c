package main

import (
	"github.com/spf13/cobra"

	"adgate/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo advertisers, publishers, campaigns and history",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err = db.Seed(cmd.Context(), pool); err != nil {
		return err
	}
	logger.Info("demo data seeded")
	return nil
}
