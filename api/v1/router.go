package v1

import (
	"github.com/appcanvas-backend/middleware"
	"github.com/appcanvas-backend/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, auth *services.AuthService, projects *services.ProjectService, uploads *services.UploadService) {
	authHandler := NewAuthHandler(auth)
	projectHandler := NewProjectHandler(projects)
	uploadHandler := NewUploadHandler(uploads)
	deployedHandler := NewDeployedHandler(projects)

	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Public render of deployed projects
	router.GET("/deployed/:projectId", deployedHandler.Render)

	// Public API endpoints
	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/projects/public/:id", projectHandler.GetPublic)
	}

	// Protected endpoints - Bearer token required
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(auth))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/projects", projectHandler.List)
		protected.POST("/projects", projectHandler.Create)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.POST("/projects/:id/assets", projectHandler.AddAsset)
		protected.POST("/projects/:id/deploy", projectHandler.Deploy)
		protected.POST("/upload", uploadHandler.Upload)
	}
}
