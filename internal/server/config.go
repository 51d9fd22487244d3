package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server's environment surface.
type Config struct {
	Addr        string   `env:"HULLSCOPE_ADDR"         envDefault:":8000"`
	CORSOrigins []string `env:"HULLSCOPE_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	Seed        int64    `env:"HULLSCOPE_SEED"         envDefault:"0"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("server: parse env: %w", err)
	}
	return cfg, nil
}
