package routes

import (
	"net/http"
	"time"

	"digitalmindset/handlers"
	"digitalmindset/middleware"
	"digitalmindset/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTokenRoutes registers the public token check.
func RegisterTokenRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/verifyToken", hb.Token.VerifyTokenHandler)
}

// RegisterGenerationRoutes registers the pipeline and derived artifact
// endpoints. All of them require a valid token.
func RegisterGenerationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.TokenAuthMiddleware(hb.TokenService))
		api.POST("/generateNiches", hb.Synthesis.GenerateNichesHandler)
		api.POST("/generateTOC", hb.Synthesis.GenerateTOCHandler)
		api.POST("/generateChapter", hb.Synthesis.GenerateChapterHandler)

		api.POST("/generateGhostwriter", hb.Artifacts.GenerateGhostwriterHandler)
		api.GET("/ghostwriter", hb.Artifacts.GetGhostwriterHandler)
		api.POST("/generateMentorResponse", hb.Artifacts.GenerateMentorResponseHandler)
		api.POST("/generateMentorPlan", hb.Artifacts.GenerateMentorPlanHandler)
		api.GET("/mentor", hb.Artifacts.GetMentorHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/verifyPassword", hb.Admin.VerifyPasswordHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AdminService))
		adminGroup.GET("/tokens", hb.Admin.ListTokensHandler)
		adminGroup.POST("/tokens", hb.Admin.CreateTokenHandler)
		adminGroup.PUT("/tokens/:token", hb.Admin.UpdateTokenHandler)
		adminGroup.DELETE("/tokens/:token", hb.Admin.DeleteTokenHandler)
		adminGroup.GET("/prompts", hb.Admin.GetPromptsHandler)
		adminGroup.PUT("/prompts", hb.Admin.UpdatePromptsHandler)
		adminGroup.GET("/products", hb.Admin.GetProductsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.StoreHealthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm DigitalMindset"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID", "X-Access-Token", "X-Admin-Password", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !containsWildcard(allowedOrigins),
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestContextMiddleware())

	RegisterTokenRoutes(r, hb)
	RegisterGenerationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
