package entities

import "time"

type Profile struct {
	UserID        string    `gorm:"primaryKey" json:"user_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	FarmSizeAcres float64   `json:"farm_size_acres"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
