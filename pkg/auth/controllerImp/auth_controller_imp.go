package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/auth/controller"
	"agrisense/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin switches the session to ?uid= (or the default dev user). Only
// routed when dev login is enabled.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DevUserID
	}
	c.SetCookie(&http.Cookie{Name: middleware.UserIDCookie, Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid := middleware.UserID(c)
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "authenticated": uid != ""})
}
