package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrisense/pkg/logger"
)

var appStart = time.Now()

// RedisPinger is satisfied by *redis.Client.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type HealthCtrl struct {
	db    *gorm.DB
	redis RedisPinger // nil when settings live in the database
	log   logger.Logger
}

func NewHealthCtrl(db *gorm.DB, rdb RedisPinger, log logger.Logger) *HealthCtrl {
	return &HealthCtrl{db: db, redis: rdb, log: logger.Component(log, "health")}
}

type sub struct {
	OK      bool   `json:"ok"`
	Err     string `json:"err,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	kv := sub{OK: true, Skipped: true}
	if h.redis != nil {
		kv = sub{OK: true}
		if err := h.redis.Ping(ctx).Err(); err != nil {
			kv = sub{OK: false, Err: "ping: " + err.Error()}
		}
	}

	allOK := db.OK && kv.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
		h.log.WithFields(map[string]interface{}{"database": db.Err, "redis": kv.Err}).Warnf("health check failed")
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"redis":    kv,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
