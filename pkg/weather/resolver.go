package weather

import (
	"context"
	"math"
	"math/rand"
	"time"

	"agrisense/entities"
	"agrisense/pkg/climate"
	"agrisense/pkg/logger"
)

// DefaultFallbackCity is the reference location used whenever live data is
// unavailable.
const DefaultFallbackCity = "Nashik,IN"

// JitterRange bounds the random temperature offset applied to fallback readings.
const JitterRange = 2.0

// Resolver produces the dashboard weather reading. It never fails: any
// provider error degrades to the seasonal fallback reading.
//
// When the provider does answer, the seasonal table still supplies
// temperature, condition, rainfall and AQI; only the resolved city name is
// taken from the live lookup.
type Resolver struct {
	provider     Provider
	rules        climate.RulesEngine
	fallbackCity string
	timeout      time.Duration
	jitter       func() float64
	log          logger.Logger
}

func NewResolver(p Provider, rules climate.RulesEngine, fallbackCity string, timeout time.Duration, log logger.Logger) *Resolver {
	if fallbackCity == "" {
		fallbackCity = DefaultFallbackCity
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{
		provider:     p,
		rules:        rules,
		fallbackCity: fallbackCity,
		timeout:      timeout,
		jitter:       func() float64 { return rand.Float64()*2*JitterRange - JitterRange },
		log:          logger.Component(log, "weather_resolver"),
	}
}

// WithJitter replaces the random offset source. fn must return values in
// [-JitterRange, JitterRange].
func (r *Resolver) WithJitter(fn func() float64) *Resolver {
	r.jitter = fn
	return r
}

func (r *Resolver) Resolve(ctx context.Context, at *entities.Coordinates, season entities.Season) entities.WeatherReading {
	if at == nil {
		return r.fallback(season)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	obs, err := r.provider.Current(ctx, *at)
	if err != nil {
		r.log.Warnf("live weather lookup failed for %.4f,%.4f, using fallback: %v", at.Lat, at.Lon, err)
		return r.fallback(season)
	}

	reading, _ := r.rules.SeasonWeather(season)
	reading.City = obs.City
	if reading.City == "" {
		reading.City = r.fallbackCity
	}
	return reading
}

func (r *Resolver) fallback(season entities.Season) entities.WeatherReading {
	reading, ok := r.rules.SeasonWeather(season)
	if ok {
		reading.Temperature = math.Round(reading.Temperature + r.jitter())
	}
	reading.City = r.fallbackCity
	return reading
}
