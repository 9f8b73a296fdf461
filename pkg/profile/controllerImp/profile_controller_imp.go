package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/apperr"
	"agrisense/pkg/middleware"
	"agrisense/pkg/profile/controller"
	"agrisense/pkg/profile/service"
)

type profileCtrl struct{ s service.ProfileService }

func New(s service.ProfileService) controller.ProfileController { return &profileCtrl{s} }

func (h *profileCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return c.JSON(apperr.KindOf(err).HTTPStatus(), echo.Map{"error": apperr.Public(err)})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *profileCtrl) Update(c echo.Context) error {
	var in service.UpdateProfileInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.Update(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return c.JSON(apperr.KindOf(err).HTTPStatus(), echo.Map{"error": apperr.Public(err)})
	}
	return c.JSON(http.StatusOK, p)
}
