package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/market/controller"
	"agrisense/pkg/market/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type marketCtrl struct{ s service.MarketService }

func New(s service.MarketService) controller.MarketController { return &marketCtrl{s} }

func filterOf(c echo.Context) service.Filter {
	return service.Filter{Query: c.QueryParam("q"), Market: c.QueryParam("market")}
}

func (h *marketCtrl) Prices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.List(filterOf(c)))
}

func (h *marketCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.Export(&buf, filterOf(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="market-prices.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
