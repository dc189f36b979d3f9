package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.Database)

	// 3. File storage for uploaded CVs
	files, err := storage.NewFileStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	// 4. Initialize Core Services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := services.NewAuthService(db)
	jobService := services.NewJobService(db, files)
	applicationService := services.NewApplicationService(db)

	// 5. Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, files)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Auth Routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/profile", middleware.RequireAuth(tokens), authHandler.Profile)

		// Job Routes (browsing is public, posting is company-only)
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)

		company := api.Group("/jobs",
			middleware.RequireAuth(tokens),
			middleware.RequireRole(models.RoleCompany, models.RoleAdmin))
		{
			company.POST("", jobHandler.Create)
			company.PUT("/:id", jobHandler.Update)
			company.DELETE("/:id", jobHandler.Delete)
		}

		// Application Routes
		applications := api.Group("/applications", middleware.RequireAuth(tokens))
		{
			applications.GET("", applicationHandler.Mine)
			applications.POST("/:jobId", applicationHandler.Apply)
			applications.GET("/job/:jobId",
				middleware.RequireRole(models.RoleCompany, models.RoleAdmin),
				applicationHandler.ForJob)
			applications.GET("/download/:filename", applicationHandler.Download)
		}
	}

	addr := ":" + cfg.Server.Port
	log.Println("Server starting on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
