package service

import (
	"net/http"
	"time"

	"insurance/internal/dto"
	"insurance/internal/model"
)

// Explicit request/model/response mappings. Natural keys are only ever
// copied from requests on create; updates start from the stored record.

func newProduct(req dto.CreateProductRequest) *model.Product {
	return &model.Product{ProductCode: req.ProductCode, ProductName: req.ProductName}
}

func applyProductUpdate(stored model.Product, req dto.UpdateProductRequest) model.Product {
	if req.ProductName != nil {
		stored.ProductName = *req.ProductName
	}
	return stored
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, ProductCode: p.ProductCode, ProductName: p.ProductName}
}

func newVehicle(req dto.CreateVehicleRequest) *model.Vehicle {
	return &model.Vehicle{LicensePlate: req.LicensePlate, Brand: req.Brand}
}

func applyVehicleUpdate(stored model.Vehicle, req dto.UpdateVehicleRequest) model.Vehicle {
	if req.Brand != nil {
		stored.Brand = *req.Brand
	}
	return stored
}

func toVehicleResponse(v model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{ID: v.ID, LicensePlate: v.LicensePlate, Brand: v.Brand}
}

func newHolder(req dto.CreateHolderRequest) *model.Holder {
	return &model.Holder{
		HolderName:     req.HolderName,
		HolderSurname:  req.HolderSurname,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
	}
}

// applyHolderUpdate merges req into a copy of stored. ID and PassportNumber
// always keep their stored values.
func applyHolderUpdate(stored model.Holder, req dto.UpdateHolderRequest) model.Holder {
	if req.HolderName != nil {
		stored.HolderName = *req.HolderName
	}
	if req.HolderSurname != nil {
		stored.HolderSurname = *req.HolderSurname
	}
	if req.PhoneNumber != nil {
		stored.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		stored.Email = *req.Email
	}
	return stored
}

func toHolderResponse(h model.Holder) dto.HolderResponse {
	return dto.HolderResponse{
		ID:             h.ID,
		HolderName:     h.HolderName,
		HolderSurname:  h.HolderSurname,
		PhoneNumber:    h.PhoneNumber,
		Email:          h.Email,
		PassportNumber: h.PassportNumber,
	}
}

func toHolderHistoryItem(h model.HolderHistory) dto.HolderHistoryItem {
	return dto.HolderHistoryItem{
		ID:             h.ID,
		HolderID:       h.HolderID,
		HolderName:     h.HolderName,
		HolderSurname:  h.HolderSurname,
		PhoneNumber:    h.PhoneNumber,
		Email:          h.Email,
		PassportNumber: h.PassportNumber,
		CreatedAt:      h.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPolicyResponse(v model.PolicyView) dto.PolicyResponse {
	return dto.PolicyResponse{
		ID:         v.Policy.ID,
		PolicyCode: v.Policy.PolicyCode,
		Cost:       v.Policy.Cost,
		Product:    toProductResponse(v.Product),
		Holder:     toHolderResponse(v.Holder),
		Vehicle:    toVehicleResponse(v.Vehicle),
	}
}

func created(msg, loc string) *dto.StatusMessage {
	return &dto.StatusMessage{Status: http.StatusCreated, Message: msg, Location: loc}
}

func updated(msg, loc string) *dto.StatusMessage {
	return &dto.StatusMessage{Status: http.StatusOK, Message: msg, Location: loc}
}
