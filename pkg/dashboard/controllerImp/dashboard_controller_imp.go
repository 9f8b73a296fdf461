package controllerImp

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/dashboard/service"
	"agrisense/pkg/middleware"
)

type DashboardCtrl struct{ s service.DashboardService }

func New(s service.DashboardService) *DashboardCtrl { return &DashboardCtrl{s: s} }

// Get serves GET /api/dashboard?lat=&lon=&season=.
func (h *DashboardCtrl) Get(c echo.Context) error {
	season, ok := entities.ParseSeason(c.QueryParam("season"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "season must be one of summer, monsoon, winter"})
	}
	at := ParseCoordinates(c.QueryParam("lat"), c.QueryParam("lon"))

	p := h.s.Build(c.Request().Context(), at, season)
	p.Imperial = middleware.SettingsFrom(c).Units.System == entities.UnitImperial
	return c.JSON(http.StatusOK, p)
}

// ParseCoordinates returns nil unless both values are usable; clients send
// "undefined" when location access was denied.
func ParseCoordinates(lat, lon string) *entities.Coordinates {
	la, err1 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lo, err2 := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	if math.IsNaN(la) || math.IsNaN(lo) || math.Abs(la) > 90 || math.Abs(lo) > 180 {
		return nil
	}
	return &entities.Coordinates{Lat: la, Lon: lo}
}
