package main

import (
	"context"

	"github.com/gashapp/gash-backend/internal/app"
	"github.com/gashapp/gash-backend/internal/cache"
	"github.com/gashapp/gash-backend/internal/config"
	"github.com/gashapp/gash-backend/internal/db"
	"github.com/gashapp/gash-backend/internal/events"
	"github.com/gashapp/gash-backend/internal/logger"
	"github.com/gashapp/gash-backend/internal/server"
	"github.com/gashapp/gash-backend/internal/service/account"
	"github.com/gashapp/gash-backend/internal/service/chat"
	"github.com/gashapp/gash-backend/internal/service/matching"
	"github.com/gashapp/gash-backend/internal/textservice"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	// Event bus shares the Redis deployment with the cache
	bus := events.NewRedisBus(redisCache.Client)

	// Moderation/translation adapter
	text := textservice.New(cfg)

	// Inject dependencies into app context
	appCtx := app.New(database, redisCache, bus, text, log)

	registrars := []server.Registrar{
		matching.NewRegistrar(appCtx),
		chat.NewRegistrar(appCtx),
		account.NewRegistrar(appCtx),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
