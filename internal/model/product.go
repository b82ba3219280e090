package model

import "time"

// Product is an insurance product offered to holders.
// ProductCode is the natural key: unique and never rewritten after creation.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	ProductName string `gorm:"not null"`
	ProductCode string `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
