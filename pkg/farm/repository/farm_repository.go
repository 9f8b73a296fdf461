package repository

import (
	"context"
	"errors"

	"agrisense/entities"
)

var ErrNotFound = errors.New("farm not found")

type FarmRepository interface {
	Create(ctx context.Context, f *entities.Farm) error
	FindByID(ctx context.Context, id string) (*entities.Farm, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Farm, error)
	// AddGreenPoints increments the stored counter and returns the new total.
	AddGreenPoints(ctx context.Context, id string, delta int) (int, error)
}
