package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
)

type ChargeHandler struct {
	Service ChargeService
}

func NewChargeHandler(s ChargeService) *ChargeHandler {
	return &ChargeHandler{Service: s}
}

// POST /charges
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req dto.Charge
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	charge, err := h.Service.CreateCharge(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, charge)
}

// GET /charges/:id
func (h *ChargeHandler) GetStatus(c *gin.Context) {
	view, err := h.Service.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DELETE /charges/:id/session
func (h *ChargeHandler) Abandon(c *gin.Context) {
	if err := h.Service.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
