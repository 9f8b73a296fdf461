package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/apperr"
	"agrisense/pkg/farm/controller"
	"agrisense/pkg/farm/service"
	"agrisense/pkg/middleware"
)

type FarmCtrl struct{ s service.FarmService }

func New(s service.FarmService) controller.FarmController { return &FarmCtrl{s} }

type callableRequest struct {
	Data struct {
		FarmID string `json:"farmId"`
	} `json:"data"`
}

type callableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Dashboard speaks the callable protocol: {"data":{...}} in,
// {"result":{...}} or {"error":{"status","message"}} out.
func (h *FarmCtrl) Dashboard(c echo.Context) error {
	var req callableRequest
	if err := c.Bind(&req); err != nil {
		return callableFail(c, apperr.New(apperr.InvalidArgument, "Request body must be {\"data\": {...}}."))
	}
	d, err := h.s.Dashboard(c.Request().Context(), middleware.UserID(c), req.Data.FarmID)
	if err != nil {
		return callableFail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": d})
}

func callableFail(c echo.Context, err error) error {
	k := apperr.KindOf(err)
	return c.JSON(k.HTTPStatus(), echo.Map{"error": callableError{Status: k.String(), Message: apperr.Public(err)}})
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var in service.CreateFarmInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	f, err := h.s.Create(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.s.Get(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.s.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.KindOf(err).HTTPStatus(), echo.Map{"error": apperr.Public(err)})
}
