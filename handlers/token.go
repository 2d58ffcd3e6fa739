package handlers

import (
	"net/http"

	"digitalmindset/services/token"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TokenHandler struct {
	Tokens token.TokenService
}

func NewTokenHandler(tokens token.TokenService) *TokenHandler {
	return &TokenHandler{Tokens: tokens}
}

type verifyTokenRequest struct {
	Token    string `json:"token"`
	DeviceID string `json:"deviceId"`
}

// VerifyTokenHandler checks a token and binds it to the caller's device.
func (h *TokenHandler) VerifyTokenHandler(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "message": "Invalid request body"})
		return
	}

	res, err := h.Tokens.Verify(c.Request.Context(), req.Token, req.DeviceID)
	if err != nil {
		status := utils.StatusFor(err)
		if status >= http.StatusInternalServerError {
			getLogger(c).Error("verify token failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"valid": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
