package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/community/controller"
	"agrisense/pkg/community/service"
	"agrisense/pkg/middleware"
)

type communityCtrl struct{ s service.CommunityService }

func New(s service.CommunityService) controller.CommunityController { return &communityCtrl{s} }

func fail(c echo.Context, err error) error {
	return c.JSON(apperr.KindOf(err).HTTPStatus(), echo.Map{"error": apperr.Public(err)})
}

func (h *communityCtrl) ListPosts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.s.ListPosts(c.Request().Context(), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *communityCtrl) CreatePost(c echo.Context) error {
	var in service.CreatePostInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.CreatePost(c.Request().Context(), middleware.UserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *communityCtrl) Like(c echo.Context) error {
	p, err := h.s.Like(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *communityCtrl) Reply(c echo.Context) error {
	p, err := h.s.Reply(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *communityCtrl) Poll(c echo.Context) error {
	v, err := h.s.Poll(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *communityCtrl) Vote(c echo.Context) error {
	var req struct {
		Option string `json:"option"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	v, err := h.s.Vote(c.Request().Context(), middleware.UserID(c), req.Option)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *communityCtrl) Tips(c echo.Context) error {
	season, ok := entities.ParseSeason(c.QueryParam("season"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "season must be one of summer, monsoon, winter"})
	}
	return c.JSON(http.StatusOK, echo.Map{"season": season, "tips": h.s.Tips(season)})
}

func (h *communityCtrl) Achievements(c echo.Context) error {
	upcoming := c.QueryParam("upcoming") == "true"
	return c.JSON(http.StatusOK, h.s.Achievements(upcoming))
}
