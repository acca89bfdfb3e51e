package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/internal/services"
)

// TariffsHandler handles the public tariff listing endpoint
type TariffsHandler struct {
	service services.TariffsServiceInterface
}

// NewTariffsHandler creates a new tariffs handler
func NewTariffsHandler(service services.TariffsServiceInterface) *TariffsHandler {
	return &TariffsHandler{service: service}
}

// List handles GET /api/tariffs
func (h *TariffsHandler) List(c *gin.Context) {
	out := h.service.List(c.Request.Context())
	c.JSON(out.Status, out.Body)
}
