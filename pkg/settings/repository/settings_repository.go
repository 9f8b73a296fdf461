package repository

import (
	"context"
	"errors"

	"agrisense/entities"
)

var ErrNotFound = errors.New("settings not found")

type SettingsRepository interface {
	Get(ctx context.Context, uid string) (*entities.Settings, error)
	Save(ctx context.Context, uid string, s entities.Settings) error
}
