package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy binds one product, one holder and one vehicle.
// The references are plain surrogate ids resolved from natural keys at write
// time; read paths expand them explicitly (see PolicyView).
type Policy struct {
	ID         uint            `gorm:"primaryKey"`
	PolicyCode string          `gorm:"uniqueIndex;not null"`
	Cost       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProductID  uint            `gorm:"not null;index"`
	HolderID   uint            `gorm:"not null;index"`
	VehicleID  uint            `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PolicyView is a policy with its three references loaded.
type PolicyView struct {
	Policy  Policy
	Product Product
	Holder  Holder
	Vehicle Vehicle
}
