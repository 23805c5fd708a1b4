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

	"github.com/meridianbank/admin-portal/internal/api"
	"github.com/meridianbank/admin-portal/internal/core/ports"
	"github.com/meridianbank/admin-portal/internal/core/service"
	"github.com/meridianbank/admin-portal/internal/infrastructure/crypto"
	"github.com/meridianbank/admin-portal/internal/infrastructure/db/memory"
	mongodb "github.com/meridianbank/admin-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/meridianbank/admin-portal/internal/infrastructure/db/redis"
	"github.com/meridianbank/admin-portal/internal/pkg/config"
	"github.com/meridianbank/admin-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "admin-portal",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Session store: Redis when configured, in-memory otherwise ---
	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = redisdb.NewSessionStore(rdb, cfg.SessionIdleTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions will not survive a restart")
		sessions = memory.NewSessionStore(cfg.SessionIdleTTL)
	}

	// --- Seed administrator on first startup ---
	hasher := crypto.NewBcryptHasher(0)
	authService := service.NewAuthService(
		mongodb.NewAdminRepository(db),
		mongodb.NewCustomerRepository(db),
		sessions,
		hasher,
	)
	if err := authService.EnsureSeedAdmin(ctx, cfg.SeedAdmin.Username, cfg.SeedAdmin.Email, cfg.SeedAdmin.Password); err != nil {
		log.Fatal().Err(err).Msg("seed administrator failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, sessions, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting admin portal")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
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
