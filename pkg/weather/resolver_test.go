package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agrisense/entities"
	"agrisense/pkg/climate"
	"agrisense/pkg/logger"
)

type mockProvider struct{ mock.Mock }

func (m *mockProvider) Current(ctx context.Context, at entities.Coordinates) (*Observation, error) {
	args := m.Called(ctx, at)
	obs, _ := args.Get(0).(*Observation)
	return obs, args.Error(1)
}

func newResolver(p Provider) *Resolver {
	return NewResolver(p, climate.Default(), "", time.Second, logger.Discard())
}

func TestResolveWithoutCoordinates(t *testing.T) {
	p := &mockProvider{}
	r := newResolver(p)
	rules := climate.Default()

	for _, s := range entities.Seasons {
		want, _ := rules.SeasonWeather(s)
		for i := 0; i < 50; i++ {
			got := r.Resolve(context.Background(), nil, s)
			assert.Equal(t, want.Condition, got.Condition)
			assert.Equal(t, want.Rainfall, got.Rainfall)
			assert.Equal(t, want.AirQualityIndex, got.AirQualityIndex)
			assert.Equal(t, DefaultFallbackCity, got.City)
			assert.InDelta(t, want.Temperature, got.Temperature, JitterRange)
		}
	}
	p.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func TestResolveJitterIsApplied(t *testing.T) {
	r := newResolver(NewNoop()).WithJitter(func() float64 { return -1.6 })
	got := r.Resolve(context.Background(), nil, entities.SeasonSummer)
	// 35 - 1.6 = 33.4 -> 33
	assert.Equal(t, 33.0, got.Temperature)
}

func TestResolveProviderFailureFallsBack(t *testing.T) {
	at := entities.Coordinates{Lat: 19.99, Lon: 73.78}
	p := &mockProvider{}
	p.On("Current", mock.Anything, at).Return(nil, errors.New("connection refused")).Once()

	r := newResolver(p).WithJitter(func() float64 { return 0 })
	got := r.Resolve(context.Background(), &at, entities.SeasonMonsoon)

	assert.Equal(t, entities.WeatherReading{
		Temperature: 28, Condition: "Rainy", Rainfall: 25, AirQualityIndex: "1 (Good)", City: DefaultFallbackCity,
	}, got)
	p.AssertExpectations(t)
}

func TestResolveNotConfiguredFallsBack(t *testing.T) {
	at := entities.Coordinates{Lat: 1, Lon: 2}
	got := newResolver(NewNoop()).WithJitter(func() float64 { return 0 }).Resolve(context.Background(), &at, entities.SeasonWinter)
	assert.Equal(t, 22.0, got.Temperature)
	assert.Equal(t, DefaultFallbackCity, got.City)
}

func TestResolveSuccessOverridesWithSeasonTable(t *testing.T) {
	at := entities.Coordinates{Lat: 18.52, Lon: 73.85}
	p := &mockProvider{}
	p.On("Current", mock.Anything, at).Return(&Observation{
		City: "Pune, IN", Temperature: 31.7, Condition: "Haze", AQI: 4,
	}, nil)

	r := newResolver(p).WithJitter(func() float64 { t.Fatal("jitter must not apply to live readings"); return 0 })
	got := r.Resolve(context.Background(), &at, entities.SeasonWinter)

	assert.Equal(t, entities.WeatherReading{
		Temperature: 22, Condition: "Clear", Rainfall: 0, AirQualityIndex: "2 (Fair)", City: "Pune, IN",
	}, got)
}

func TestResolveSuccessWithoutCityUsesReference(t *testing.T) {
	at := entities.Coordinates{Lat: 0, Lon: -160}
	p := &mockProvider{}
	p.On("Current", mock.Anything, at).Return(&Observation{Temperature: 26}, nil)

	got := newResolver(p).Resolve(context.Background(), &at, entities.SeasonSummer)
	assert.Equal(t, DefaultFallbackCity, got.City)
	assert.Equal(t, 35.0, got.Temperature)
}

type slowProvider struct{}

func (slowProvider) Current(ctx context.Context, _ entities.Coordinates) (*Observation, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestResolveTimeoutFallsBack(t *testing.T) {
	at := entities.Coordinates{Lat: 1, Lon: 1}
	r := NewResolver(slowProvider{}, climate.Default(), "Testville", 20*time.Millisecond, logger.Discard())

	start := time.Now()
	got := r.Resolve(context.Background(), &at, entities.SeasonSummer)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "Testville", got.City)
	assert.Equal(t, "Sunny", got.Condition)
}

func TestResolveUnknownSeason(t *testing.T) {
	got := newResolver(NewNoop()).Resolve(context.Background(), nil, entities.Season("spring"))
	assert.Equal(t, entities.WeatherReading{City: DefaultFallbackCity}, got)
}
