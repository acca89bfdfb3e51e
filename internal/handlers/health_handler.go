package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthcheck reports liveness. The upstream backend is deliberately not
// probed here: the service degrades per-endpoint when the backend is down,
// so a dead backend must not make the proxy itself report unhealthy.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
