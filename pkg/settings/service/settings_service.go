package service

import (
	"context"

	"agrisense/entities"
)

type SettingsService interface {
	// Get returns the defaults for users who never saved settings.
	Get(ctx context.Context, uid string) (entities.Settings, error)
	Update(ctx context.Context, uid string, s entities.Settings) (entities.Settings, error)
	ToggleNotification(ctx context.Context, uid, key string) (entities.Settings, error)
	ToggleDataSaver(ctx context.Context, uid string) (entities.Settings, error)
}
