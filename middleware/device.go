package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys set by the middleware in this package.
const (
	CtxRequestID = "requestID"
	CtxDeviceID  = "deviceID"
	CtxClientIP  = "clientIP"
	CtxToken     = "token"
	CtxLogger    = "logger"
)

// RequestContextMiddleware tags every request with an id, the client IP and
// the optional X-Device-ID header.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set(CtxRequestID, requestID)
		clientIP := getClientIP(c)
		c.Set(CtxClientIP, clientIP)
		fields := []zap.Field{zap.String("requestID", requestID), zap.String("clientIP", clientIP)}
		if deviceID := c.GetHeader("X-Device-ID"); deviceID != "" {
			c.Set(CtxDeviceID, deviceID)
			fields = append(fields, zap.String("deviceID", deviceID))
		}
		c.Set(CtxLogger, zap.L().With(fields...))
		c.Next()
	}
}

// RequestLogger returns the request-scoped logger, or the global logger
// when RequestContextMiddleware did not run.
func RequestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(CtxLogger); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
