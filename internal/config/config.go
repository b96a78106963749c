package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"adgate/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection holding campaigns,
	// publishers, blocklists and analytics.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the shared counter and cache store.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// GeoIP locates the offline geolocation database.
	GeoIP configs.GeoIP `envPrefix:"GEOIP_"`

	// Match tunes the decisioning pipeline.
	Match configs.Matching `envPrefix:"MATCH_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Match.Validate(); err != nil {
		return cfg, fmt.Errorf("MATCH_: %w", err)
	}
	return cfg, nil
}
