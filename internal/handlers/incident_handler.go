package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/models/dto"
)

type IncidentHandler struct {
	Service IncidentService
}

func NewIncidentHandler(s IncidentService) *IncidentHandler {
	return &IncidentHandler{Service: s}
}

// POST /incidents/assessments
func (h *IncidentHandler) Assess(c *gin.Context) {
	var req dto.Incident
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	classification, err := h.Service.Assess(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, classification)
}
