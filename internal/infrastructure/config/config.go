package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	ShieldKey string `env:"SHIELD_KEY"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Shield   ShieldConfig
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=host=localhost user=backoffice password=backoffice dbname=backoffice port=5432 sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ShieldConfig struct {
	WindowMinutes int `env:"SHIELD_WINDOW_MINUTES, default=10"`
	MaxRequests   int `env:"SHIELD_MAX_REQUESTS,   default=50"`
}

// Window returns the fixed rate-limit window as a duration.
func (s ShieldConfig) Window() time.Duration {
	return time.Duration(s.WindowMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
// JWT_SECRET and SHIELD_KEY have no defaults: the process refuses to start
// without them rather than running with a guessable signing key.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		panic("config: JWT_SECRET environment variable is not set")
	}
	if cfg.ShieldKey == "" {
		panic("config: SHIELD_KEY environment variable is not set")
	}
	return &cfg
}

// Production reports whether the service runs with production settings
// (controls the Secure flag on the session cookie and JSON log output).
func (c *Config) Production() bool {
	return c.Env == "production"
}
