package controller

import "github.com/labstack/echo/v4"

type SettingsController interface {
	Get(c echo.Context) error
	Update(c echo.Context) error
	ToggleNotification(c echo.Context) error
	ToggleDataSaver(c echo.Context) error
}
