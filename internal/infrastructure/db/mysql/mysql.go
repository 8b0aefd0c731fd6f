package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the pooled MySQL handle, applies the pool bounds from
// configuration, and verifies reachability with a ping before returning. The
// caller must not bind its listen socket until this succeeds.
func Connect(ctx context.Context, cfg config.DatabaseConfig, production bool) (*sql.DB, error) {
	dsnCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql dsn: %w", err)
	}
	if production {
		dsnCfg.TLSConfig = "true"
	}

	db, err := sql.Open("mysql", dsnCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Fail fast: connection acquisition is bounded by the configured timeout.
	acquire := cfg.AcquireTimeout
	if acquire <= 0 {
		acquire = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, acquire)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}

// Watchdog pings the pool on a fixed interval and terminates the process when
// the backend becomes unreachable outside request scope. A pool that has lost
// its backend cannot be trusted, so there is no drain — the process exits and
// the supervisor restarts it. Stops silently when ctx is cancelled.
func Watchdog(ctx context.Context, db *sql.DB, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := db.PingContext(pingCtx)
			cancel()
			if err != nil && ctx.Err() == nil {
				log.Fatal().Err(err).Msg("database pool unreachable, terminating")
			}
		}
	}
}
