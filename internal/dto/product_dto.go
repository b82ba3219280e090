package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	ProductCode string `json:"productCode" validate:"required,max=32"`
	ProductName string `json:"productName" validate:"required,max=120"`
}

// UpdateProductRequest is a partial update. ProductCode is accepted for
// symmetry with the create payload but always replaced by the stored code.
type UpdateProductRequest struct {
	ProductCode *string `json:"productCode"`
	ProductName *string `json:"productName" validate:"omitnil,min=1,max=120"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint   `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
}
