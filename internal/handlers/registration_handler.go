package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/config"
	"github.com/savdoai/console-api/internal/middleware"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/internal/services"
)

// RegistrationHandler handles the account registration endpoint
type RegistrationHandler struct {
	service   services.RegistrationServiceInterface
	cookieCfg config.AuthCookieConfig
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service services.RegistrationServiceInterface, cookieCfg config.AuthCookieConfig) *RegistrationHandler {
	return &RegistrationHandler{service: service, cookieCfg: cookieCfg}
}

// Register handles POST /api/register
func (h *RegistrationHandler) Register(c *gin.Context) {
	if !hasJSONContentType(c) {
		respondError(c, http.StatusBadRequest, models.MsgContentTypeRequired, nil)
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.MsgMalformedJSON, err)
		return
	}

	out := h.service.Register(c.Request.Context(), &req)

	// Persist the backend session token before writing the body; the token
	// is also echoed in the body for the frontend's client-side state.
	if out.Token != "" {
		middleware.SetAuthCookie(c, h.cookieCfg, out.Token)
	}

	c.JSON(out.Status, out.Body)
}
