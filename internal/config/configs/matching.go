package configs

import (
	"fmt"
	"time"
)

// Matching tunes the decisioning pipeline.
type Matching struct {
	// FrequencyCap is the default impressions per campaign and user per day.
	FrequencyCap int `env:"FREQUENCY_CAP" envDefault:"3"`
	// PacingMode is "probabilistic" (throttle from 80% of the hourly limit)
	// or "hard" (serve until the limit).
	PacingMode string `env:"PACING_MODE" envDefault:"probabilistic"`

	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"50ms"`
	RepoTimeout  time.Duration `env:"REPO_TIMEOUT" envDefault:"200ms"`
	SinkTimeout  time.Duration `env:"SINK_TIMEOUT" envDefault:"100ms"`
	Concurrency  int           `env:"CONCURRENCY" envDefault:"8"`

	CandidateTTL time.Duration `env:"CANDIDATE_TTL" envDefault:"5s"`
	PublisherTTL time.Duration `env:"PUBLISHER_TTL" envDefault:"5m"`

	// GIVTRateLimit is requests per minute from one IP before it is flagged.
	GIVTRateLimit int `env:"GIVT_RATE_LIMIT" envDefault:"100"`
	// GIVTRulesFile optionally replaces the built-in bot lists with a YAML
	// file.
	GIVTRulesFile string `env:"GIVT_RULES_FILE"`
}

// Validate rejects settings the pipeline cannot run with.
func (c Matching) Validate() error {
	switch c.PacingMode {
	case "probabilistic", "hard":
	default:
		return fmt.Errorf("unknown pacing mode %q", c.PacingMode)
	}
	if c.FrequencyCap <= 0 {
		return fmt.Errorf("frequency cap must be positive, got %d", c.FrequencyCap)
	}
	if c.GIVTRateLimit <= 0 {
		return fmt.Errorf("givt rate limit must be positive, got %d", c.GIVTRateLimit)
	}
	return nil
}
