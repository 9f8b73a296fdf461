package entities

// Coordinates of the caller, when the client shared them.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReading is produced per request and never persisted.
type WeatherReading struct {
	Temperature     float64 `json:"temperature" yaml:"temperature"` // °C
	Condition       string  `json:"condition" yaml:"condition"`
	Rainfall        float64 `json:"rainfall" yaml:"rainfall"` // mm
	AirQualityIndex string  `json:"aqi" yaml:"aqi"`
	City            string  `json:"city" yaml:"-"`
}
