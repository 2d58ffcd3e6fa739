// File: digitalmindset/handlers/admin.go
package handlers

import (
	"net/http"

	"digitalmindset/middleware"
	"digitalmindset/models"
	"digitalmindset/services/admin"
	"digitalmindset/services/prompts"
	"digitalmindset/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the administrator panel.
type AdminHandler struct {
	Admin   admin.AdminService
	Prompts *prompts.Service
}

func NewAdminHandler(a admin.AdminService, p *prompts.Service) *AdminHandler {
	return &AdminHandler{Admin: a, Prompts: p}
}

type passwordRequest struct {
	Password string `json:"password"`
}

type createTokenRequest struct {
	Token string `json:"token"`
}

type updateTokenRequest struct {
	Active *bool `json:"active"`
}

func (ah *AdminHandler) VerifyPasswordHandler(c *gin.Context) {
	var req passwordRequest
	_ = c.ShouldBindJSON(&req)
	if !ah.Admin.VerifyPassword(req.Password) {
		getLogger(c).Warn("admin password rejected", zap.String("ip", c.GetString(middleware.CtxClientIP)))
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (ah *AdminHandler) ListTokensHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Admin.Tokens().List(c.Request.Context()))
}

func (ah *AdminHandler) CreateTokenHandler(c *gin.Context) {
	var req createTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		utils.JSONError(c, http.StatusBadRequest, "Token is required", "body must contain a non-empty token")
		return
	}
	tokens, err := ah.Admin.Tokens().Create(c.Request.Context(), req.Token)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token added successfully", "tokens": tokens})
}

func (ah *AdminHandler) UpdateTokenHandler(c *gin.Context) {
	var req updateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		utils.JSONError(c, http.StatusBadRequest, "active is required", "body must contain a boolean active field")
		return
	}
	tokens, err := ah.Admin.Tokens().SetActive(c.Request.Context(), c.Param("token"), *req.Active)
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated successfully", "tokens": tokens})
}

func (ah *AdminHandler) DeleteTokenHandler(c *gin.Context) {
	tokens, err := ah.Admin.Tokens().Remove(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token deleted successfully", "tokens": tokens})
}

// GetPromptsHandler returns the stored overrides; ?effective=true merges in
// the defaults.
func (ah *AdminHandler) GetPromptsHandler(c *gin.Context) {
	if c.Query("effective") == "true" {
		c.JSON(http.StatusOK, ah.Prompts.Effective(c.Request.Context()))
		return
	}
	c.JSON(http.StatusOK, ah.Prompts.Get(c.Request.Context()))
}

func (ah *AdminHandler) UpdatePromptsHandler(c *gin.Context) {
	var overrides models.PromptOverrides
	if err := c.ShouldBindJSON(&overrides); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid prompts body", err.Error())
		return
	}
	if err := ah.Prompts.Set(c.Request.Context(), overrides); err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prompts updated successfully"})
}

func (ah *AdminHandler) GetProductsHandler(c *gin.Context) {
	products, err := ah.Admin.Products(c.Request.Context())
	if err != nil {
		utils.RespondError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, products)
}
