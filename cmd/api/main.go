// @title        Employee Records API
// @version      1.0
// @description  REST service for managing employee records with session-based
// @description  authentication and role-guarded endpoints.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffdesk/employee-api/internal/api"
	"github.com/staffdesk/employee-api/internal/infrastructure/config"
	"github.com/staffdesk/employee-api/internal/infrastructure/db/mysql"
	redisdb "github.com/staffdesk/employee-api/internal/infrastructure/db/redis"
	"github.com/staffdesk/employee-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	// The database must be reachable before the listen socket is bound.
	db, err := mysql.Connect(ctx, cfg.Database, cfg.Production())
	if err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}
	defer db.Close()

	go mysql.Watchdog(ctx, db, 30*time.Second, log)

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis unreachable")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Bool("auth", cfg.AuthEnabled).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	// Stop accepting new requests, wait for in-flight handlers, then the
	// deferred Close calls release the pool and the redis client.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
