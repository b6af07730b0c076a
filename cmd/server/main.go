package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cornerstone/chores-api/internal/api"
	"github.com/cornerstone/chores-api/internal/core/service"
	"github.com/cornerstone/chores-api/internal/infrastructure/config"
	mongodb "github.com/cornerstone/chores-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cornerstone/chores-api/internal/infrastructure/db/redis"
	"github.com/cornerstone/chores-api/internal/infrastructure/queue"
	"github.com/cornerstone/chores-api/pkg/logger"
)

// @title           Chores API
// @version         1.0
// @description     Household task-management backend: parents assign chores to children.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	for name, idx := range map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		"users":    mongodb.NewUserRepository(db),
		"children": mongodb.NewChildRepository(db),
		"chores":   mongodb.NewChoreRepository(db),
		"activity": mongodb.NewActivityRepository(db),
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	activityService := service.NewActivityService(mongodb.NewActivityRepository(db), logger.Component("activity"))
	dispatcher := queue.NewDispatcher(0, activityService, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, activityService, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
