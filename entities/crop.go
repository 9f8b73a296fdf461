package entities

// CropProfile holds the growing conditions a crop does best in.
type CropProfile struct {
	Name             string  `json:"name" yaml:"name"`
	IdealTemperature float64 `json:"ideal_temperature" yaml:"ideal_temperature"`
	IdealMoisture    float64 `json:"ideal_moisture" yaml:"ideal_moisture"`
}

type CropRecommendation struct {
	Name         string `json:"name"`
	MatchPercent int    `json:"matchPercent"` // 0-100
	Note         string `json:"note"`
}
