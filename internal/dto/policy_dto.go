package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreatePolicyRequest links a new policy to its product, holder and vehicle
// by their natural keys.
type CreatePolicyRequest struct {
	PolicyCode     string          `json:"policyCode"     validate:"required,max=32"`
	Cost           decimal.Decimal `json:"cost"           validate:"min=0"`
	ProductCode    string          `json:"productCode"    validate:"required"`
	PassportNumber string          `json:"passportNumber" validate:"required"`
	LicensePlate   string          `json:"licensePlate"   validate:"required"`
}

// UpdatePolicyRequest is a partial update. Each non-empty reference key is
// re-resolved; omitted keys keep the stored reference. PolicyCode is never applied.
type UpdatePolicyRequest struct {
	PolicyCode     *string          `json:"policyCode"`
	Cost           *decimal.Decimal `json:"cost" validate:"omitempty,min=0"`
	ProductCode    *string          `json:"productCode"`
	PassportNumber *string          `json:"passportNumber"`
	LicensePlate   *string          `json:"licensePlate"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PolicyResponse embeds the full referenced records, not just their ids.
type PolicyResponse struct {
	ID         uint            `json:"id"`
	PolicyCode string          `json:"policyCode"`
	Cost       decimal.Decimal `json:"cost"`
	Product    ProductResponse `json:"product"`
	Holder     HolderResponse  `json:"holder"`
	Vehicle    VehicleResponse `json:"vehicle"`
}
