package configs

import "time"

// Redis configures the shared counter and cache store. An empty Addr
// selects the in-process store, which is only correct for a single
// instance.
type Redis struct {
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	Prefix   string        `env:"KEY_PREFIX" envDefault:"adgate:"`
	PoolSize int           `env:"POOL_SIZE" envDefault:"32"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"50ms"`
	// JanitorInterval is how often the in-process store drops expired keys.
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL" envDefault:"1m"`
}

// Enabled reports whether a Redis server is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
