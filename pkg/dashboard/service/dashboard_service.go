package service

import (
	"context"

	"agrisense/entities"
)

type DashboardService interface {
	Build(ctx context.Context, at *entities.Coordinates, season entities.Season) entities.DashboardPayload
}
