package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/apperr"
	"agrisense/pkg/middleware"
	"agrisense/pkg/settings/controller"
	"agrisense/pkg/settings/service"
)

type settingsCtrl struct{ s service.SettingsService }

func New(s service.SettingsService) controller.SettingsController { return &settingsCtrl{s} }

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.KindOf(err).HTTPStatus(), echo.Map{"error": apperr.Public(err)})
}

func (h *settingsCtrl) Get(c echo.Context) error {
	s, err := h.s.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// Update accepts a partial document; absent fields keep their stored values.
func (h *settingsCtrl) Update(c echo.Context) error {
	ctx := c.Request().Context()
	uid := middleware.UserID(c)
	cur, err := h.s.Get(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	if err := c.Bind(&cur); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	s, err := h.s.Update(ctx, uid, cur)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *settingsCtrl) ToggleNotification(c echo.Context) error {
	s, err := h.s.ToggleNotification(c.Request().Context(), middleware.UserID(c), c.Param("key"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *settingsCtrl) ToggleDataSaver(c echo.Context) error {
	s, err := h.s.ToggleDataSaver(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
