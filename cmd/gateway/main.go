package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/comandero/dashboard-gateway/internal/api"
	redisdb "github.com/comandero/dashboard-gateway/internal/infrastructure/db/redis"
	"github.com/comandero/dashboard-gateway/internal/infrastructure/upstream"
	"github.com/comandero/dashboard-gateway/internal/pkg/config"
	"github.com/comandero/dashboard-gateway/pkg/logger"
)

// @title           Comandero Dashboard Gateway
// @version         1.0
// @description     Session-aware gateway between the restaurant dashboard and the backend REST API.
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	base, err := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid upstream configuration")
	}

	e := api.NewRouter(cfg, rdb, base, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("dashboard gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
