package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/config"
	"github.com/savdoai/console-api/internal/middleware"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/internal/services"
)

// LoginHandler handles the login proxy endpoint
type LoginHandler struct {
	service   services.LoginServiceInterface
	cookieCfg config.AuthCookieConfig
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service services.LoginServiceInterface, cookieCfg config.AuthCookieConfig) *LoginHandler {
	return &LoginHandler{service: service, cookieCfg: cookieCfg}
}

// Login handles POST /api/login
func (h *LoginHandler) Login(c *gin.Context) {
	if !hasJSONContentType(c) {
		respondError(c, http.StatusBadRequest, models.MsgContentTypeRequired, nil)
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.MsgMalformedJSON, err)
		return
	}

	out := h.service.Login(c.Request.Context(), &req)

	if out.Token != "" {
		middleware.SetAuthCookie(c, h.cookieCfg, out.Token)
	}

	c.JSON(out.Status, out.Body)
}

// Logout handles POST /api/logout by expiring the auth cookie. The backend
// token itself is left to expire upstream.
func (h *LoginHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
