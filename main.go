package main

import (
	"log"

	v1 "github.com/appcanvas-backend/api/v1"
	"github.com/appcanvas-backend/config"
	"github.com/appcanvas-backend/database"
	"github.com/appcanvas-backend/repositories"
	"github.com/appcanvas-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration; a missing JWT secret is fatal here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Wire repositories and services
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo)
	uploadService := services.NewUploadService(cfg.UploadDir)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Serve uploaded assets statically
	router.Static("/uploads", cfg.UploadDir)

	v1.RegisterRoutes(router, authService, projectService, uploadService)

	// Start server
	log.Printf("🚀 AppCanvas API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
