package entities

import "time"

// Farm is the document read by the farm dashboard callable.
type Farm struct {
	FarmID          string           `gorm:"primaryKey" json:"farm_id"`
	OwnerID         string           `gorm:"index" json:"owner_id"`
	Name            string           `json:"name"`
	Location        string           `json:"location"`
	SizeAcres       float64          `json:"size_acres"`
	GreenPoints     int              `json:"green_points"`
	IrrigationZones []IrrigationZone `gorm:"serializer:json" json:"irrigation_zones"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IrrigationZone struct {
	ZoneID    string  `json:"zone_id"`
	Name      string  `json:"name"`
	CropType  string  `json:"crop_type"`
	AreaAcres float64 `json:"area_acres"`
}

// FarmDashboard is the single payload returned by the farm dashboard callable.
type FarmDashboard struct {
	SoilHealth           FarmSoilHealth    `json:"soilHealth"`
	CropRecommendations  []CropSuitability `json:"cropRecommendations"`
	IrrigationZones      []ScheduledZone   `json:"irrigationZones"`
	GrowthTracking       GrowthTracking    `json:"growthTracking"`
	SmartRecommendations []string          `json:"smartRecommendations"`
	GreenPoints          int               `json:"greenPoints"`
	FarmData             Farm              `json:"farmData"`
}

type FarmSoilHealth struct {
	Fertility  string `json:"fertility"`
	Prediction string `json:"prediction"`
}

type CropSuitability struct {
	Crop        string `json:"crop"`
	Suitability string `json:"suitability"`
}

// ScheduledZone is a farm zone plus its next irrigation time (RFC 3339, UTC).
type ScheduledZone struct {
	IrrigationZone
	NextIrrigation string `json:"nextIrrigation"`
}

type GrowthTracking struct {
	PredictedYield string `json:"predictedYield"`
	HealthScore    int    `json:"healthScore"`
}
