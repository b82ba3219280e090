package model

import "time"

// Vehicle is an insured vehicle, keyed by its license plate.
type Vehicle struct {
	ID           uint   `gorm:"primaryKey"`
	Brand        string `gorm:"not null"`
	LicensePlate string `gorm:"uniqueIndex;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
