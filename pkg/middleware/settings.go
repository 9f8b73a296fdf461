package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/logger"
)

type SettingsLoader interface {
	Get(ctx context.Context, uid string) (entities.Settings, error)
}

type settingsCtxKey struct{}

const settingsKey = "settings"

// Settings loads the caller's settings record once per request and makes it
// available to handlers and to anything holding the request context.
// Anonymous callers and load failures get the defaults.
func Settings(l SettingsLoader, log logger.Logger) echo.MiddlewareFunc {
	log = logger.Component(log, "settings_middleware")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := entities.DefaultSettings()
			if uid := UserID(c); uid != "" {
				loaded, err := l.Get(c.Request().Context(), uid)
				if err != nil {
					log.Warnf("load settings for %s: %v", uid, err)
				} else {
					s = loaded
				}
			}
			c.Set(settingsKey, s)
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), settingsCtxKey{}, s)))
			return next(c)
		}
	}
}

// SettingsFrom returns the request's settings, or the defaults when the
// Settings middleware did not run.
func SettingsFrom(c echo.Context) entities.Settings {
	if s, ok := c.Get(settingsKey).(entities.Settings); ok {
		return s
	}
	return entities.DefaultSettings()
}

func SettingsFromContext(ctx context.Context) (entities.Settings, bool) {
	s, ok := ctx.Value(settingsCtxKey{}).(entities.Settings)
	return s, ok
}
