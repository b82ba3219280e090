package dto

// HolderHistoryItem is one row of GET /api/v1/holders/:passportNumber/history.
type HolderHistoryItem struct {
	ID             uint   `json:"id"`
	HolderID       uint   `json:"holderId"`
	HolderName     string `json:"holderName"`
	HolderSurname  string `json:"holderSurname"`
	PhoneNumber    string `json:"phoneNumber"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
	CreatedAt      string `json:"createdAt"`
}
