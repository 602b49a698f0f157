package app

import (
	"log/slog"

	"github.com/gashapp/gash-backend/internal/cache"
	"github.com/gashapp/gash-backend/internal/events"
	"github.com/gashapp/gash-backend/internal/textservice"
	"gorm.io/gorm"
)

// AppContext holds shared dependencies (DB, Redis, event bus, adapters).
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Bus        events.Bus
	Text       *textservice.Client
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, bus events.Bus, text *textservice.Client, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Bus:        bus,
		Text:       text,
		Logger:     logger,
	}
}
