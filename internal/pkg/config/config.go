package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// BaseURL of the medical-records REST API this dashboard fronts.
	BaseURL string        `env:"BACKEND_URL, default=http://localhost:8000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=15s"`
}

type SessionConfig struct {
	// Cookie is the name of the cookie carrying the session id. Tokens
	// themselves never leave the server.
	Cookie string        `env:"SESSION_COOKIE, default=pghd_session"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
	// Secure marks the session cookie Secure; leave it off only for
	// plain-HTTP development setups.
	Secure bool `env:"SESSION_SECURE, default=false"`
}

type RedisConfig struct {
	// Addr selects the session backing store; when empty the in-memory
	// store is used instead.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
