package serviceImp

import (
	"context"
	"errors"

	"agrisense/entities"
	"agrisense/pkg/apperr"
	"agrisense/pkg/logger"
	"agrisense/pkg/settings/repository"
	"agrisense/pkg/settings/service"
)

type settingsSvc struct {
	r   repository.SettingsRepository
	log logger.Logger
}

func NewSettingsService(r repository.SettingsRepository, log logger.Logger) service.SettingsService {
	return &settingsSvc{r: r, log: logger.Component(log, "settings_service")}
}

func (s *settingsSvc) Get(ctx context.Context, uid string) (entities.Settings, error) {
	if uid == "" {
		return entities.DefaultSettings(), nil
	}
	got, err := s.r.Get(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return entities.DefaultSettings(), nil
	}
	if err != nil {
		s.log.Errorf("load settings %s: %v", uid, err)
		return entities.Settings{}, apperr.Wrap(apperr.Internal, "", err)
	}
	return *got, nil
}

func (s *settingsSvc) Update(ctx context.Context, uid string, in entities.Settings) (entities.Settings, error) {
	if uid == "" {
		return entities.Settings{}, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	if err := validate(in); err != nil {
		return entities.Settings{}, err
	}
	if err := s.r.Save(ctx, uid, in); err != nil {
		s.log.Errorf("save settings %s: %v", uid, err)
		return entities.Settings{}, apperr.Wrap(apperr.Internal, "", err)
	}
	return in, nil
}

func validate(in entities.Settings) error {
	switch in.Units.System {
	case entities.UnitMetric, entities.UnitImperial:
	default:
		return apperr.New(apperr.InvalidArgument, "units.system must be metric or imperial")
	}
	switch in.Units.Land {
	case entities.LandAcre, entities.LandHectare, entities.LandGuntha:
	default:
		return apperr.New(apperr.InvalidArgument, "units.land must be acre, hectare or guntha")
	}
	return nil
}

func (s *settingsSvc) ToggleNotification(ctx context.Context, uid, key string) (entities.Settings, error) {
	return s.modify(ctx, uid, func(st *entities.Settings) error {
		n := &st.Notifications
		switch key {
		case "weather":
			n.Weather = !n.Weather
		case "market":
			n.Market = !n.Market
		case "community":
			n.Community = !n.Community
		case "tips":
			n.Tips = !n.Tips
		default:
			return apperr.New(apperr.InvalidArgument, "unknown notification "+key)
		}
		return nil
	})
}

func (s *settingsSvc) ToggleDataSaver(ctx context.Context, uid string) (entities.Settings, error) {
	return s.modify(ctx, uid, func(st *entities.Settings) error {
		st.DataSaver = !st.DataSaver
		return nil
	})
}

func (s *settingsSvc) modify(ctx context.Context, uid string, fn func(*entities.Settings) error) (entities.Settings, error) {
	if uid == "" {
		return entities.Settings{}, apperr.New(apperr.Unauthenticated, "authentication required")
	}
	cur, err := s.Get(ctx, uid)
	if err != nil {
		return entities.Settings{}, err
	}
	if err := fn(&cur); err != nil {
		return entities.Settings{}, err
	}
	return s.Update(ctx, uid, cur)
}
