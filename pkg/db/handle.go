package db

import (
	"github.com/shoplight/shoplight/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	prometheusplugin "gorm.io/plugin/prometheus"
)

// Handle carries the database connection together with its availability.
// When the store is unconfigured or unreachable at startup the handle is
// empty and every store operation degrades to a safe no-op instead of
// failing each event.
type Handle struct {
	db *gorm.DB
}

// Available returns an attached handle.
func Available(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

// Unavailable returns a detached handle.
func Unavailable() *Handle {
	return &Handle{}
}

// Get returns the underlying connection and whether one is attached.
func (h *Handle) Get() (*gorm.DB, bool) {
	if h == nil || h.db == nil {
		return nil, false
	}
	return h.db, true
}

// Open connects to the configured database. A missing or unreachable
// store yields an Unavailable handle rather than an error.
func Open(cfg config.Config, log *zap.Logger) *Handle {
	if !cfg.StoreConfigured() {
		log.Warn("store not configured, operations degrade to no-ops")
		return Unavailable()
	}

	dialect, err := Dialect(cfg)
	if err != nil {
		log.Error("unsupported store configuration", zap.Error(err))
		return Unavailable()
	}

	conn, err := gorm.Open(dialect, &gorm.Config{})
	if err != nil {
		log.Error("store unreachable, operations degrade to no-ops",
			zap.String("type", cfg.DBType),
			zap.Error(err),
		)
		return Unavailable()
	}

	if err := conn.Use(prometheusplugin.New(prometheusplugin.Config{
		DBName:          cfg.DBName,
		RefreshInterval: 15,
	})); err != nil {
		log.Warn("db metrics plugin not registered", zap.Error(err))
	}

	log.Info("store connected",
		zap.String("type", cfg.DBType),
		zap.String("name", cfg.DBName),
	)
	return Available(conn)
}

// Module wires the database handle.
var Module = fx.Module("db",
	fx.Provide(Open),
)
