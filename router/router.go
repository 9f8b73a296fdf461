package router

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	authCtrl "agrisense/pkg/auth/controller"
	communityCtrl "agrisense/pkg/community/controller"
	dashboardCtrl "agrisense/pkg/dashboard/controller"
	farmCtrl "agrisense/pkg/farm/controller"
	healthCtrl "agrisense/pkg/health/controller"
	"agrisense/pkg/logger"
	marketCtrl "agrisense/pkg/market/controller"
	"agrisense/pkg/middleware"
	profileCtrl "agrisense/pkg/profile/controller"
	settingsCtrl "agrisense/pkg/settings/controller"
)

type Options struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	EnableDevLogin bool
	StaticDir      string
}

type Controllers struct {
	Auth      authCtrl.AuthController
	Health    healthCtrl.HealthController
	Dashboard dashboardCtrl.DashboardController
	Farm      farmCtrl.FarmController
	Profile   profileCtrl.ProfileController
	Community communityCtrl.CommunityController
	Settings  settingsCtrl.SettingsController
	Market    marketCtrl.MarketController
}

func New(e *echo.Echo, c Controllers, settings middleware.SettingsLoader, opt Options, log logger.Logger) *echo.Echo {
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     opt.CORSOrigins,
		AllowHeaders:     []string{echo.HeaderContentType, middleware.UserIDHeader, middleware.RequestIDHeader},
		AllowCredentials: !allowsAny(opt.CORSOrigins),
	}))
	e.Use(middleware.Identity(opt.EnableDevLogin))

	e.GET("/health", c.Health.Health)
	e.GET("/whoami", c.Auth.WhoAmI)
	if opt.EnableDevLogin {
		e.GET("/devlogin", c.Auth.DevLogin)
	}

	api := e.Group("/api", middleware.RateLimit(opt.RateLimitRPS, opt.RateLimitBurst, log), middleware.Settings(settings, log))

	api.GET("/dashboard", c.Dashboard.Get)
	api.POST("/farm/dashboard", c.Farm.Dashboard) // callable; reports UNAUTHENTICATED itself

	api.GET("/market/prices", c.Market.Prices)
	api.GET("/market/prices.xlsx", c.Market.Export)

	api.GET("/community/posts", c.Community.ListPosts)
	api.GET("/community/poll", c.Community.Poll)
	api.GET("/community/tips", c.Community.Tips)
	api.GET("/community/achievements", c.Community.Achievements)

	authed := api.Group("", middleware.RequireIdentity())

	authed.POST("/farms", c.Farm.Create)
	authed.GET("/farms", c.Farm.List)
	authed.GET("/farms/:id", c.Farm.Get)

	authed.GET("/profile", c.Profile.Get)
	authed.PUT("/profile", c.Profile.Update)

	authed.POST("/community/posts", c.Community.CreatePost)
	authed.POST("/community/posts/:id/like", c.Community.Like)
	authed.POST("/community/posts/:id/replies", c.Community.Reply)
	authed.POST("/community/poll/vote", c.Community.Vote)

	authed.GET("/settings", c.Settings.Get)
	authed.PUT("/settings", c.Settings.Update)
	authed.POST("/settings/notifications/:key/toggle", c.Settings.ToggleNotification)
	authed.POST("/settings/data-saver/toggle", c.Settings.ToggleDataSaver)

	if opt.StaticDir != "" {
		if _, err := os.Stat(filepath.Join(opt.StaticDir, "index.html")); err == nil {
			e.Static("/", opt.StaticDir)
		} else {
			log.Infof("no frontend at %s, serving API only", opt.StaticDir)
		}
	}
	return e
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}
