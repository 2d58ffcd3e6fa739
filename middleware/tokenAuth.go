// File: middleware/tokenAuth.go
package middleware

import (
	"net/http"

	"digitalmindset/services/token"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type tokenProbe struct {
	Token    string `json:"token"`
	DeviceID string `json:"deviceId"`
}

// TokenAuthMiddleware admits a request only when its token exists, is active
// and is not bound to a different device. The token is read from the JSON
// body (cached for the handler) or the X-Access-Token header.
func TokenAuthMiddleware(tokens token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var probe tokenProbe
		if c.Request.Body != nil && c.Request.ContentLength != 0 {
			if err := c.ShouldBindBodyWith(&probe, binding.JSON); err != nil {
				RequestLogger(c).Debug("TokenAuthMiddleware: unreadable body", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": "Invalid request body"})
				return
			}
		}
		if probe.Token == "" {
			probe.Token = c.GetHeader("X-Access-Token")
		}
		deviceID := probe.DeviceID
		if deviceID == "" {
			deviceID = c.GetString(CtxDeviceID)
		}

		if err := tokens.Authorize(c.Request.Context(), probe.Token, deviceID); err != nil {
			status := utils.StatusFor(err)
			RequestLogger(c).Info("TokenAuthMiddleware: rejected", zap.Int("status", status), zap.Error(err))
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "message": err.Error()})
			return
		}

		c.Set(CtxToken, probe.Token)
		c.Next()
	}
}
