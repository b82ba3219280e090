package dto

type CreateVehicleRequest struct {
	LicensePlate string `json:"licensePlate" validate:"required,max=16"`
	Brand        string `json:"brand"        validate:"required,max=60"`
}

// UpdateVehicleRequest is a partial update; LicensePlate is never applied.
type UpdateVehicleRequest struct {
	LicensePlate *string `json:"licensePlate"`
	Brand        *string `json:"brand" validate:"omitnil,min=1,max=60"`
}

type VehicleResponse struct {
	ID           uint   `json:"id"`
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
}
