package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/internal/models"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends the uniform failure envelope and attaches the error to
// the gin context for the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.ErrorBody{Success: false, Error: message})
}

// hasJSONContentType reports whether the request declares a JSON body.
// Substring match: "application/json; charset=utf-8" must pass.
func hasJSONContentType(c *gin.Context) bool {
	contentType := c.GetHeader("Content-Type")
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
