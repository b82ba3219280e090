package handler

import (
	"net/http"

	"insurance/internal/dto"
	"insurance/internal/service"

	"github.com/gin-gonic/gin"
)

type PoliciesHandler struct{ svc service.PolicyService }

func NewPoliciesHandler(svc service.PolicyService) *PoliciesHandler {
	return &PoliciesHandler{svc: svc}
}

func (h *PoliciesHandler) List(c *gin.Context) {
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

func (h *PoliciesHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("policyCode"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PoliciesHandler) Create(c *gin.Context) {
	var req dto.CreatePolicyRequest
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

func (h *PoliciesHandler) Update(c *gin.Context) {
	var req dto.UpdatePolicyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("policyCode"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWritten(c, resp)
}
