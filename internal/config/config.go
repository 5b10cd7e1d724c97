package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings, read from the environment with defaults
// that let the server start with zero setup.
type Config struct {
	HTTPPort       string        `env:"HTTP_PORT" env-default:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	HandlerTimeout time.Duration `env:"HANDLER_TIMEOUT" env-default:"10s"`
}

// MustLoad reads the configuration from the environment.
func MustLoad() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.HTTPPort
}
