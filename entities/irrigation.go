package entities

type IrrigationZoneSchedule struct {
	Zone             string  `json:"zone" yaml:"zone"`
	CropType         string  `json:"cropType" yaml:"crop_type"`
	GrowthStage      string  `json:"growthStage" yaml:"growth_stage"`
	Reason           string  `json:"recommendationReason" yaml:"reason"`
	NextIrrigationMM float64 `json:"nextIrrigation_mm" yaml:"next_irrigation_mm"`
}
