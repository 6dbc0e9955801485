// Command api runs the back-office HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mtendere/backoffice/internal/api"
	"github.com/mtendere/backoffice/internal/core/ports"
	"github.com/mtendere/backoffice/internal/db"
	"github.com/mtendere/backoffice/internal/infrastructure/activity"
	"github.com/mtendere/backoffice/internal/infrastructure/config"
	"github.com/mtendere/backoffice/internal/infrastructure/db/memory"
	mongodb "github.com/mtendere/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/mtendere/backoffice/internal/infrastructure/db/redis"
	"github.com/mtendere/backoffice/pkg/logger"

	_ "github.com/mtendere/backoffice/docs"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// @title           Mtendere Back Office API
// @version         1.0
// @description     Admin back office for the Mtendere education platform.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = config.DevJWTSecret
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- User store ---
	var (
		users       ports.UserRepository
		mongoClient *mongo.Client
	)
	switch cfg.Store {
	case "mongo":
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := mongodb.NewUserRepository(database)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		users = repo
		mongoClient = client
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo user store")
	default:
		users = memory.NewUserRepository()
		log.Info().Msg("using in-memory user store")
	}

	// --- Response cache (optional) ---
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, public cache disabled")
		} else {
			redisClient = client
			defer func() { _ = client.Close() }()
		}
	}

	// --- Activity feed ---
	recorder := activity.NewRecorder(log)
	recorder.Start(ctx)

	// --- Seed admin account ---
	if err := db.EnsureAdminUser(ctx, users, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	e := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Log:      log,
		Users:    users,
		Mongo:    mongoClient,
		Redis:    redisClient,
		Activity: recorder,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
