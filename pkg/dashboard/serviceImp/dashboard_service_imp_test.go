package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrisense/entities"
	"agrisense/pkg/climate"
	"agrisense/pkg/logger"
)

type fixedWeather struct {
	reading entities.WeatherReading
	gotAt   *entities.Coordinates
	calls   int
}

func (f *fixedWeather) Resolve(_ context.Context, at *entities.Coordinates, _ entities.Season) entities.WeatherReading {
	f.calls++
	f.gotAt = at
	return f.reading
}

func TestBuildScoresAgainstResolvedWeather(t *testing.T) {
	w := &fixedWeather{reading: entities.WeatherReading{Temperature: 25, Condition: "Clear", AirQualityIndex: "2 (Fair)", City: "Nagpur, IN"}}
	svc := NewDashboardService(w, climate.Default(), logger.Discard())

	at := &entities.Coordinates{Lat: 21.14, Lon: 79.08}
	p := svc.Build(context.Background(), at, entities.SeasonWinter)

	assert.Equal(t, 1, w.calls)
	assert.Same(t, at, w.gotAt)
	assert.Equal(t, "Nagpur, IN", p.Weather.City)
	assert.Equal(t, 85.0, p.Soil.FertilityPercent)
	require.NotEmpty(t, p.Crops)
	// Grapes and Nagpur Orange peak at 25°C; Grapes also matches 60% moisture.
	assert.Equal(t, "Grapes", p.Crops[0].Name)
	assert.Equal(t, 100, p.Crops[0].MatchPercent)
	assert.Len(t, p.Irrigation, 2)
}

func TestBuildMonsoon(t *testing.T) {
	w := &fixedWeather{reading: entities.WeatherReading{Temperature: 28, Condition: "Rainy", Rainfall: 25}}
	p := NewDashboardService(w, climate.Default(), logger.Discard()).Build(context.Background(), nil, entities.SeasonMonsoon)

	require.Len(t, p.Irrigation, 1)
	assert.Zero(t, p.Irrigation[0].NextIrrigationMM)
	require.NotEmpty(t, p.Crops)
	assert.Contains(t, p.Crops[0].Note, "rainy weather and 85% soil moisture")
}
