package weather

import (
	"context"
	"errors"

	"agrisense/entities"
)

// ErrNotConfigured is returned by providers that have no credentials.
var ErrNotConfigured = errors.New("weather provider not configured")

// Observation is what a live provider reports for a location.
type Observation struct {
	City        string
	Temperature float64
	Condition   string
	AQI         int // 1 (Good) .. 5 (Very Poor)
}

type Provider interface {
	Current(ctx context.Context, at entities.Coordinates) (*Observation, error)
}

type noopProvider struct{}

// NewNoop is used when no API key is configured; every lookup falls back.
func NewNoop() Provider { return noopProvider{} }

func (noopProvider) Current(context.Context, entities.Coordinates) (*Observation, error) {
	return nil, ErrNotConfigured
}

var aqiText = []string{"Good", "Fair", "Moderate", "Poor", "Very Poor"}

// AQIText maps the 1..5 air quality index to its label.
func AQIText(aqi int) string {
	if aqi < 1 || aqi > len(aqiText) {
		return "Unknown"
	}
	return aqiText[aqi-1]
}
