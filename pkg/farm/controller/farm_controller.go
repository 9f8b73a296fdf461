package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	Dashboard(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
}
