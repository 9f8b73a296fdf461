package controller

import "github.com/labstack/echo/v4"

type CommunityController interface {
	ListPosts(c echo.Context) error
	CreatePost(c echo.Context) error
	Like(c echo.Context) error
	Reply(c echo.Context) error
	Poll(c echo.Context) error
	Vote(c echo.Context) error
	Tips(c echo.Context) error
	Achievements(c echo.Context) error
}
