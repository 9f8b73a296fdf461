package serviceImp

import (
	"context"

	"agrisense/entities"
	"agrisense/pkg/climate"
	"agrisense/pkg/dashboard/service"
	"agrisense/pkg/logger"
)

type WeatherResolver interface {
	Resolve(ctx context.Context, at *entities.Coordinates, season entities.Season) entities.WeatherReading
}

type dashboardSvc struct {
	weather WeatherResolver
	rules   climate.RulesEngine
	log     logger.Logger
}

func NewDashboardService(w WeatherResolver, rules climate.RulesEngine, log logger.Logger) service.DashboardService {
	return &dashboardSvc{weather: w, rules: rules, log: logger.Component(log, "dashboard")}
}

// Build never fails; weather degradation is absorbed by the resolver.
func (s *dashboardSvc) Build(ctx context.Context, at *entities.Coordinates, season entities.Season) entities.DashboardPayload {
	w := s.weather.Resolve(ctx, at, season)
	soil := s.rules.Soil(season)
	p := entities.DashboardPayload{
		Weather:    w,
		Soil:       soil,
		Crops:      s.rules.Recommend(season, w, soil),
		Irrigation: s.rules.Irrigation(season),
	}
	s.log.Debugf("dashboard %s for %s: %d crops, %d zones", season, w.City, len(p.Crops), len(p.Irrigation))
	return p
}
