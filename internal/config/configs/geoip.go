package configs

// GeoIP lists candidate MaxMind City database files. The first one that
// opens is used; with none, client IPs resolve to an unknown location.
type GeoIP struct {
	Paths []string `env:"PATHS" envSeparator:"," envDefault:"/usr/share/GeoIP/GeoLite2-City.mmdb,./GeoLite2-City.mmdb"`
}
