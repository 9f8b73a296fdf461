package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// UserIDHeader is set by the upstream identity provider's gateway.
	UserIDHeader = "X-User-Id"
	UserIDCookie = "UID"
	DevUserID    = "U_DEV_DEFAULT"

	uidKey = "uid"
)

// Identity records the caller's user id when one was asserted, via header or
// session cookie. It never rejects a request. With devLogin enabled, anonymous
// callers get the uid from ?uid= or DevUserID, remembered in a cookie.
func Identity(devLogin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if uid == "" {
				if ck, err := c.Cookie(UserIDCookie); err == nil {
					uid = strings.TrimSpace(ck.Value)
				}
			}
			if uid == "" && devLogin {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DevUserID
				}
				c.SetCookie(&http.Cookie{Name: UserIDCookie, Value: uid, Path: "/"})
			}
			if uid != "" {
				c.Set(uidKey, uid)
			}
			return next(c)
		}
	}
}

// UserID returns "" for anonymous callers.
func UserID(c echo.Context) string {
	uid, _ := c.Get(uidKey).(string)
	return uid
}

// RequireIdentity rejects anonymous callers with 401.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserID(c) == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}
			return next(c)
		}
	}
}
