package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"adgate/internal/config"
	"adgate/internal/config/configs"
)

var rootCmd = &cobra.Command{
	Use:   "adgate",
	Short: "adgate - real-time ad campaign decisioning",
	Long: `adgate filters active campaigns down to those eligible for an ad slot
and ranks them by expected yield. Configuration is read from the environment.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// main is the entry point of adgate. Without a subcommand it serves.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and builds the structured logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, newLogger(cfg.Log), nil
}

func newLogger(cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
