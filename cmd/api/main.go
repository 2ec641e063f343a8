package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/justsurfingit/jobly/internal/auth"
	"github.com/justsurfingit/jobly/internal/config"
	"github.com/justsurfingit/jobly/internal/database"
	"github.com/justsurfingit/jobly/internal/handlers"
	"github.com/justsurfingit/jobly/internal/repository"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Initialize Repositories (Dependencies)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db, cfg.BcryptCost)

	// 4. Initialize Token Manager
	tokens := auth.NewTokenManager(cfg.SecretKey)

	// 5. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	userHandler := handlers.NewUserHandler(userRepo, tokens)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	handlers.RegisterRoutes(r, tokens, authHandler, companyHandler, jobHandler, userHandler)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
