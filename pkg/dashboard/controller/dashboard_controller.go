package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Get(c echo.Context) error
}
