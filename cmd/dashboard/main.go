package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/core/service"
	"github.com/pghd/records-dashboard/internal/infrastructure/backend"
	"github.com/pghd/records-dashboard/internal/infrastructure/session"
	"github.com/pghd/records-dashboard/internal/pkg/config"
	"github.com/pghd/records-dashboard/internal/web"
	"github.com/pghd/records-dashboard/internal/web/middleware"
	"github.com/pghd/records-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		store ports.SessionStore
		rdb   *redis.Client
	)
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = session.Connect(ctx, session.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, cfg.Session.TTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions held in memory")
		store = session.NewMemoryStore(cfg.Session.TTL)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, store, log)

	cookie := middleware.SessionCookie{
		Name:   cfg.Session.Cookie,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	}

	e, err := web.NewRouter(web.Deps{
		Auth:       service.NewAuthService(client, store, log),
		Doctor:     service.NewDoctorService(client, log),
		Patient:    service.NewPatientService(client, log),
		Cookie:     cookie,
		Redis:      rdb,
		BackendURL: cfg.Backend.BaseURL,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("dashboard listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
