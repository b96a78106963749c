package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"2s"`
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"2s"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
