package model

import "time"

// Holder is the person a policy is issued to.
// PassportNumber is the natural key: unique and never rewritten after creation.
type Holder struct {
	ID             uint   `gorm:"primaryKey"`
	HolderName     string `gorm:"not null"`
	HolderSurname  string `gorm:"not null"`
	PhoneNumber    string `gorm:"not null"`
	Email          string `gorm:"not null"`
	PassportNumber string `gorm:"uniqueIndex;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SameAs reports whether h and other carry identical holder data.
// Timestamps are bookkeeping and do not count as a change.
func (h Holder) SameAs(other Holder) bool {
	return h.ID == other.ID &&
		h.HolderName == other.HolderName &&
		h.HolderSurname == other.HolderSurname &&
		h.PhoneNumber == other.PhoneNumber &&
		h.Email == other.Email &&
		h.PassportNumber == other.PassportNumber
}
