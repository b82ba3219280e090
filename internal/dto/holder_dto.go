package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateHolderRequest struct {
	HolderName     string `json:"holderName"     validate:"required,max=80"`
	HolderSurname  string `json:"holderSurname"  validate:"required,max=80"`
	PhoneNumber    string `json:"phoneNumber"    validate:"required,max=20"`
	Email          string `json:"email"          validate:"required,email"`
	PassportNumber string `json:"passportNumber" validate:"required,max=20"`
}

// UpdateHolderRequest is a partial update. Omitted fields keep their stored
// value; PassportNumber is always replaced by the stored passport number.
type UpdateHolderRequest struct {
	HolderName     *string `json:"holderName"    validate:"omitnil,min=1,max=80"`
	HolderSurname  *string `json:"holderSurname" validate:"omitnil,min=1,max=80"`
	PhoneNumber    *string `json:"phoneNumber"   validate:"omitnil,min=1,max=20"`
	Email          *string `json:"email"         validate:"omitnil,email"`
	PassportNumber *string `json:"passportNumber"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HolderResponse struct {
	ID             uint   `json:"id"`
	HolderName     string `json:"holderName"`
	HolderSurname  string `json:"holderSurname"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
}
