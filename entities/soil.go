package entities

type SoilReading struct {
	MoisturePercent  float64 `json:"moisture" yaml:"moisture"`
	FertilityPercent float64 `json:"fertility" yaml:"fertility"`
	ConditionsNote   string  `json:"conditions" yaml:"conditions"`
}
