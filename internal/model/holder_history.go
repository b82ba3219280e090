package model

import "time"

// HolderHistory is a snapshot of a holder taken right after an effective update.
// Rows are append-only: never updated, never deleted.
type HolderHistory struct {
	ID             uint   `gorm:"primaryKey"`
	HolderID       uint   `gorm:"not null;index"`
	HolderName     string `gorm:"not null"`
	HolderSurname  string `gorm:"not null"`
	PhoneNumber    string `gorm:"not null"`
	Email          string `gorm:"not null"`
	PassportNumber string `gorm:"not null;index"`
	CreatedAt      time.Time
}

// NewHolderHistory copies the current state of h into a history row.
func NewHolderHistory(h Holder) *HolderHistory {
	return &HolderHistory{
		HolderID:       h.ID,
		HolderName:     h.HolderName,
		HolderSurname:  h.HolderSurname,
		PhoneNumber:    h.PhoneNumber,
		Email:          h.Email,
		PassportNumber: h.PassportNumber,
	}
}
