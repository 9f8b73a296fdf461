package service

import (
	"context"

	"agrisense/entities"
)

type UpdateProfileInput struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Location      string  `json:"location"`
	FarmSizeAcres float64 `json:"farm_size_acres"`
}

type ProfileService interface {
	// Get returns an empty profile for users who never saved one.
	Get(ctx context.Context, uid string) (*entities.Profile, error)
	Update(ctx context.Context, uid string, in UpdateProfileInput) (*entities.Profile, error)
	// DisplayName is the name shown on community posts.
	DisplayName(ctx context.Context, uid string) string
}
