package repository

import (
	"context"
	"errors"

	"agrisense/entities"
)

var ErrNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUser(ctx context.Context, uid string) (*entities.Profile, error)
	Upsert(ctx context.Context, p *entities.Profile) error
}
