package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DashboardSchemaVersion is bumped whenever the wire shape of DashboardView changes.
const DashboardSchemaVersion = 1

// DashboardPayload is built fresh per request and discarded after serialization.
type DashboardPayload struct {
	Weather    WeatherReading
	Soil       SoilReading
	Crops      []CropRecommendation
	Irrigation []IrrigationZoneSchedule

	// Imperial renders temperature in °F and rainfall in inches.
	Imperial bool
}

// DashboardView is the serialized form of DashboardPayload. Temperature and
// rainfall are strings carrying their unit suffix.
type DashboardView struct {
	SchemaVersion       int                      `json:"schemaVersion"`
	Weather             WeatherView              `json:"weather"`
	SoilHealth          SoilReading              `json:"soilHealth"`
	CropRecommendations []CropRecommendationView `json:"cropRecommendations"`
	IrrigationSchedule  []IrrigationZoneSchedule `json:"irrigationSchedule"`
}

type WeatherView struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Rainfall    string `json:"rainfall"`
	AQI         string `json:"aqi"`
	City        string `json:"city"`
}

type CropRecommendationView struct {
	Name         string `json:"name"`
	Match        string `json:"match"`
	MatchPercent int    `json:"matchPercent"`
	Note         string `json:"note"`
}

func (p DashboardPayload) View() DashboardView {
	v := DashboardView{
		SchemaVersion: DashboardSchemaVersion,
		Weather: WeatherView{
			Temperature: FormatTemperature(p.Weather.Temperature, p.Imperial),
			Condition:   p.Weather.Condition,
			Rainfall:    FormatRainfall(p.Weather.Rainfall, p.Imperial),
			AQI:         p.Weather.AirQualityIndex,
			City:        p.Weather.City,
		},
		SoilHealth:          p.Soil,
		CropRecommendations: make([]CropRecommendationView, 0, len(p.Crops)),
		IrrigationSchedule:  make([]IrrigationZoneSchedule, 0, len(p.Irrigation)),
	}
	for _, c := range p.Crops {
		v.CropRecommendations = append(v.CropRecommendations, CropRecommendationView{
			Name:         c.Name,
			Match:        fmt.Sprintf("%d%% Match", c.MatchPercent),
			MatchPercent: c.MatchPercent,
			Note:         c.Note,
		})
	}
	v.IrrigationSchedule = append(v.IrrigationSchedule, p.Irrigation...)
	return v
}

func (p DashboardPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.View())
}

// FormatTemperature renders a Celsius value as "28°C", or "82.4°F" when imperial.
func FormatTemperature(celsius float64, imperial bool) string {
	if imperial {
		f := math.Round((celsius*9/5+32)*10) / 10
		return strconv.FormatFloat(f, 'f', -1, 64) + "°F"
	}
	return strconv.FormatFloat(celsius, 'f', -1, 64) + "°C"
}

// FormatRainfall renders millimetres as "5mm", or "0.2in" when imperial.
func FormatRainfall(mm float64, imperial bool) string {
	if imperial {
		in := math.Round(mm/25.4*100) / 100
		return strconv.FormatFloat(in, 'f', -1, 64) + "in"
	}
	return strconv.FormatFloat(mm, 'f', -1, 64) + "mm"
}
