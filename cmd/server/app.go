package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrisense/config"
	"agrisense/database"
	"agrisense/pkg/climate"
	"agrisense/pkg/logger"
	"agrisense/pkg/scheduler"
	"agrisense/pkg/weather"
	"agrisense/router"

	// Auth + Health
	authCtrlImp "agrisense/pkg/auth/controllerImp"
	healthCtrlImp "agrisense/pkg/health/controllerImp"

	// Dashboard
	dashboardCtrlImp "agrisense/pkg/dashboard/controllerImp"
	dashboardSvc "agrisense/pkg/dashboard/service"
	dashboardSvcImp "agrisense/pkg/dashboard/serviceImp"

	// Farm
	farmCtrlImp "agrisense/pkg/farm/controllerImp"
	farmRepoImp "agrisense/pkg/farm/repositoryImp"
	farmSvcImp "agrisense/pkg/farm/serviceImp"

	// Profile
	profileCtrlImp "agrisense/pkg/profile/controllerImp"
	profileRepoImp "agrisense/pkg/profile/repositoryImp"
	profileSvcImp "agrisense/pkg/profile/serviceImp"

	// Community
	communityCtrlImp "agrisense/pkg/community/controllerImp"
	communityRepoImp "agrisense/pkg/community/repositoryImp"
	communitySvcImp "agrisense/pkg/community/serviceImp"

	// Settings
	settingsCtrlImp "agrisense/pkg/settings/controllerImp"
	settingsRepo "agrisense/pkg/settings/repository"
	settingsRepoImp "agrisense/pkg/settings/repositoryImp"
	settingsSvcImp "agrisense/pkg/settings/serviceImp"

	// Market
	marketCtrlImp "agrisense/pkg/market/controllerImp"
	marketSvc "agrisense/pkg/market/service"
	marketSvcImp "agrisense/pkg/market/serviceImp"
	"agrisense/pkg/market/source"
)

type app struct {
	cfg    config.AppConfig
	log    logger.Logger
	db     *gorm.DB
	rdb    *redis.Client
	echo   *echo.Echo
	market marketSvc.MarketService
	cron   *scheduler.CronScheduler
}

// newDashboard wires the seasonal rules and weather lookup. It needs no
// database, so the dashboard subcommand can use it directly.
func newDashboard(cfg config.AppConfig, log logger.Logger) (dashboardSvc.DashboardService, error) {
	rules, err := climate.LoadFromFiles(cfg.SeasonTablesFile, cfg.IrrigationXLSX)
	if err != nil {
		return nil, fmt.Errorf("climate rules: %w", err)
	}

	provider := weather.NewNoop()
	if cfg.OpenWeatherAPIKey != "" {
		provider = weather.NewOpenWeather(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, cfg.WeatherTimeout, log)
	} else {
		log.Info("OPENWEATHER_API_KEY not set, dashboard weather uses seasonal fallback only")
	}
	resolver := weather.NewResolver(provider, rules, cfg.FallbackCity, cfg.WeatherTimeout, log)
	return dashboardSvcImp.NewDashboardService(resolver, rules, log), nil
}

func newApp(cfg config.AppConfig, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	dash, err := newDashboard(cfg, log)
	if err != nil {
		return nil, err
	}

	// 1) Stores
	if a.db, err = database.OpenSQLite(cfg.DBPath); err != nil {
		return nil, err
	}
	var settingsStore settingsRepo.SettingsRepository
	if cfg.RedisAddr != "" {
		if a.rdb, err = database.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			a.close()
			return nil, err
		}
		settingsStore = settingsRepoImp.NewRedis(a.rdb)
	} else {
		settingsStore = settingsRepoImp.NewGorm(a.db)
	}

	// 2) Services
	profiles := profileSvcImp.NewProfileService(profileRepoImp.New(a.db), log)
	polls := communityRepoImp.NewPollRepository(a.db)
	if err := communitySvcImp.SeedDefaults(context.Background(), polls); err != nil {
		a.close()
		return nil, fmt.Errorf("seed community poll: %w", err)
	}
	community := communitySvcImp.NewCommunityService(communityRepoImp.NewPostRepository(a.db), polls, profiles, log)
	settings := settingsSvcImp.NewSettingsService(settingsStore, log)
	farms := farmSvcImp.NewFarmService(farmRepoImp.New(a.db), log)

	prices := source.Static()
	if cfg.MarketSourceURL != "" {
		prices = source.NewHTML(cfg.MarketSourceURL, 20*time.Second, log)
	}
	a.market = marketSvcImp.NewMarketService(prices, log)

	// 3) Market refresh
	a.cron = scheduler.NewCronScheduler(30*time.Second, log)
	if cfg.MarketSourceURL != "" {
		if err := a.cron.Schedule("market_refresh", cfg.MarketRefreshCron, a.market.Refresh); err != nil {
			a.close()
			return nil, err
		}
	}

	// 4) HTTP
	var pinger healthCtrlImp.RedisPinger
	if a.rdb != nil {
		pinger = a.rdb
	}
	a.echo = router.New(echo.New(), router.Controllers{
		Auth:      authCtrlImp.NewAuthController(),
		Health:    healthCtrlImp.NewHealthCtrl(a.db, pinger, log),
		Dashboard: dashboardCtrlImp.New(dash),
		Farm:      farmCtrlImp.New(farms),
		Profile:   profileCtrlImp.New(profiles),
		Community: communityCtrlImp.New(community),
		Settings:  settingsCtrlImp.New(settings),
		Market:    marketCtrlImp.New(a.market),
	}, settings, router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		EnableDevLogin: cfg.EnableDevLogin,
		StaticDir:      cfg.StaticDir,
	}, log)
	return a, nil
}

// run serves until ctx is cancelled, then drains in-flight requests.
func (a *app) run(ctx context.Context) error {
	if a.cfg.MarketSourceURL != "" {
		go func() {
			if err := a.market.Refresh(ctx); err != nil {
				a.log.Warnf("initial market refresh: %v", err)
			}
		}()
	}
	a.cron.Start()

	errc := make(chan error, 1)
	go func() {
		a.log.Infof("listening on :%s", a.cfg.Port)
		errc <- a.echo.Start(":" + a.cfg.Port)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.echo.Shutdown(shutdownCtx)
}

func (a *app) close() {
	if a.cron != nil {
		a.cron.Stop()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
