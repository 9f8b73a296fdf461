package service

import (
	"context"

	"agrisense/entities"
)

type CreateFarmInput struct {
	Name            string                    `json:"name"`
	Location        string                    `json:"location"`
	SizeAcres       float64                   `json:"size_acres"`
	IrrigationZones []entities.IrrigationZone `json:"irrigation_zones"`
}

// FarmService errors are *apperr.Error values.
type FarmService interface {
	// Dashboard awards green points on every successful call.
	Dashboard(ctx context.Context, uid, farmID string) (*entities.FarmDashboard, error)
	Create(ctx context.Context, uid string, in CreateFarmInput) (*entities.Farm, error)
	Get(ctx context.Context, uid, farmID string) (*entities.Farm, error)
	ListMine(ctx context.Context, uid string) ([]entities.Farm, error)
}
