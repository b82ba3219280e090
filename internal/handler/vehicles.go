package handler

import (
	"net/http"

	"insurance/internal/dto"
	"insurance/internal/service"

	"github.com/gin-gonic/gin"
)

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

func (h *VehiclesHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("licensePlate"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWritten(c, resp)
}

func (h *VehiclesHandler) Update(c *gin.Context) {
	var req dto.UpdateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("licensePlate"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWritten(c, resp)
}
