package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PasswordVerifier checks the administrator password.
type PasswordVerifier interface {
	VerifyPassword(password string) bool
}

// AdminAuthMiddleware requires the admin password in X-Admin-Password or as
// a bearer credential.
func AdminAuthMiddleware(admin PasswordVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader("X-Admin-Password")
		if password == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				password = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin credentials"})
			return
		}
		if !admin.VerifyPassword(password) {
			RequestLogger(c).Warn("AdminAuthMiddleware: wrong admin password", zap.String("ip", c.GetString(CtxClientIP)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
