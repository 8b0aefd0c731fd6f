package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, loaded from the environment once at
// startup and passed explicitly to the components that need it.
type Config struct {
	Port          string `env:"PORT,           default=3001"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	SessionSecret string `env:"SESSION_SECRET"`

	// AuthEnabled selects the guarded variant of the API: session middleware
	// plus role checks on the routes that carry them.
	AuthEnabled bool `env:"AUTH_ENABLED, default=false"`

	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
}

// DatabaseConfig configures the MySQL connection pool.
type DatabaseConfig struct {
	DSN             string        `env:"DATABASE_DSN,      default=root@tcp(localhost:3306)/employees?parseTime=true"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=1000"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE,  default=30s"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFE,  default=30m"`
	// AcquireTimeout bounds the startup ping and every repository statement,
	// including the wait for a free connection under pool pressure.
	AcquireTimeout time.Duration `env:"DB_ACQUIRE_TIMEOUT, default=5s"`
}

// RedisConfig configures the session store backend. Timeout bounds dialing
// and the startup ping.
type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// SessionConfig controls session token lifetime.
type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL, default=24h"`
}

// Production reports whether the service runs with production hardening
// (TLS to the database, JSON logs).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// Sessions are keyed with the secret, so the guarded variant refuses to
	// start without one.
	if cfg.AuthEnabled && cfg.SessionSecret == "" {
		return nil, fmt.Errorf("config: SESSION_SECRET is required when AUTH_ENABLED is set")
	}
	return &cfg, nil
}
