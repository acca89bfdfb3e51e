package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/savdoai/console-api/config"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/pkg/logger"
	"go.uber.org/zap"
)

// authTokenKey is the gin context key the auth token is stored under.
// Handlers read it via AuthToken instead of touching cookies themselves.
const authTokenKey = "authToken"

// RequireAuthToken extracts the opaque backend session token from the auth
// cookie (or a Bearer header for non-browser clients) and puts it on the
// context. The token is never inspected locally: the backend is the only
// party that can validate it.
func RequireAuthToken(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if token == "" {
			logger.Warn("Missing auth token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, models.ErrorBody{Success: false, Error: models.MsgAuthRequired})
			c.Abort()
			return
		}

		c.Set(authTokenKey, token)
		c.Next()
	}
}

// AuthToken returns the token placed on the context by RequireAuthToken
func AuthToken(c *gin.Context) string {
	if v, ok := c.Get(authTokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// SetAuthCookie persists a backend session token as an HTTP-only cookie
func SetAuthCookie(c *gin.Context, cfg config.AuthCookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.Name,
		token,
		cfg.MaxAgeSec,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookie expires the auth cookie
func ClearAuthCookie(c *gin.Context, cfg config.AuthCookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		cfg.Name,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}
