package entities

import "time"

const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"

	LandAcre    = "acre"
	LandHectare = "hectare"
	LandGuntha  = "guntha"
)

type Settings struct {
	Units         UnitSettings         `json:"units"`
	Notifications NotificationSettings `json:"notifications"`
	DataSaver     bool                 `json:"dataSaver"`
}

type UnitSettings struct {
	System string `json:"system"` // metric|imperial
	Land   string `json:"land"`   // acre|hectare|guntha
}

type NotificationSettings struct {
	Weather   bool `json:"weather"`
	Market    bool `json:"market"`
	Community bool `json:"community"`
	Tips      bool `json:"tips"`
}

func DefaultSettings() Settings {
	return Settings{
		Units:         UnitSettings{System: UnitMetric, Land: LandAcre},
		Notifications: NotificationSettings{Weather: true, Market: true, Community: true},
	}
}

// SettingsRecord is the relational form used when no key-value store is configured.
type SettingsRecord struct {
	UserID    string   `gorm:"primaryKey"`
	Settings  Settings `gorm:"serializer:json"`
	UpdatedAt time.Time
}
