package handler

import (
	"net/http"

	"insurance/internal/dto"
	"insurance/internal/service"

	"github.com/gin-gonic/gin"
)

type HoldersHandler struct{ svc service.HolderService }

func NewHoldersHandler(svc service.HolderService) *HoldersHandler {
	return &HoldersHandler{svc: svc}
}

func (h *HoldersHandler) List(c *gin.Context) {
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

func (h *HoldersHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("passportNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HoldersHandler) Create(c *gin.Context) {
	var req dto.CreateHolderRequest
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

func (h *HoldersHandler) Update(c *gin.Context) {
	var req dto.UpdateHolderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("passportNumber"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWritten(c, resp)
}

// History lists the archived snapshots of a holder, newest first.
func (h *HoldersHandler) History(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	resp, err := h.svc.History(c.Request.Context(), c.Param("passportNumber"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
