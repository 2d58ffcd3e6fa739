package handlers

import (
	"digitalmindset/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger set by the request context
// middleware.
func getLogger(c *gin.Context) *zap.Logger {
	return middleware.RequestLogger(c)
}
