package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/internal/middleware"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/internal/services"
)

// AIConfigHandler handles the AI assistant configuration endpoints.
// Both routes sit behind middleware.RequireAuthToken.
type AIConfigHandler struct {
	service services.AIConfigServiceInterface
}

// NewAIConfigHandler creates a new AI config handler
func NewAIConfigHandler(service services.AIConfigServiceInterface) *AIConfigHandler {
	return &AIConfigHandler{service: service}
}

// SaveConfig handles POST /api/ai-config
func (h *AIConfigHandler) SaveConfig(c *gin.Context) {
	if !hasJSONContentType(c) {
		respondError(c, http.StatusBadRequest, models.MsgContentTypeRequired, nil)
		return
	}

	var req models.AIConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.MsgMalformedJSON, err)
		return
	}

	out := h.service.SaveConfig(c.Request.Context(), &req, middleware.AuthToken(c))
	c.JSON(out.Status, out.Body)
}

// GetConfig handles GET /api/ai-config
func (h *AIConfigHandler) GetConfig(c *gin.Context) {
	out := h.service.GetConfig(c.Request.Context(), middleware.AuthToken(c))
	c.JSON(out.Status, out.Body)
}
