package main

import (
	"context"

	"github.com/opsdesk/backoffice/internal/api"
	"github.com/opsdesk/backoffice/internal/infrastructure/config"
	"github.com/opsdesk/backoffice/internal/infrastructure/db/postgres"
	"github.com/opsdesk/backoffice/internal/infrastructure/db/redis"
	"github.com/opsdesk/backoffice/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx := context.Background()

	db, err := postgres.Connect(postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	if err := postgres.EnsureAdmin(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(cfg, db, rdb, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
