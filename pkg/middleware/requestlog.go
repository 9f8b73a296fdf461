package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agrisense/pkg/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestLog tags each request with an id and writes one access line.
func RequestLog(log logger.Logger) echo.MiddlewareFunc {
	log = logger.Component(log, "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, rid)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			entry := log.WithFields(map[string]interface{}{
				"request_id": rid,
				"status":     c.Response().Status,
				"latency":    time.Since(start).String(),
				"ip":         c.RealIP(),
			})
			if err != nil {
				entry.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
			} else {
				entry.Infof("%s %s", c.Request().Method, c.Request().URL.Path)
			}
			return nil
		}
	}
}
