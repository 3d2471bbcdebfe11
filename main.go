package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sumaiyaamin/chill-gamer-server/config"
	"github.com/sumaiyaamin/chill-gamer-server/controllers"
	"github.com/sumaiyaamin/chill-gamer-server/data_access"
	"github.com/sumaiyaamin/chill-gamer-server/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log.Printf("Configuration loaded for environment: %s", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	reviewRepo := data_access.NewReviewRepository(mongodb)
	watchlistRepo := data_access.NewWatchlistRepository(mongodb)

	// Initialize services
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(reviewRepo, watchlistRepo, userService)
	watchlistService := services.NewWatchlistService(watchlistRepo, userService)

	// Initialize controllers
	userController := controllers.NewUserController(userService, reviewService, watchlistService)
	reviewController := controllers.NewReviewController(reviewService)
	watchlistController := controllers.NewWatchlistController(watchlistService)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	// Liveness check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chill Gamer server is running")
	})

	// User routes
	r.POST("/users", userController.Register)
	r.GET("/users/:email", userController.GetProfile)
	r.PATCH("/users/:email", userController.UpdateProfile)
	r.GET("/users/:email/reviews", userController.GetReviews)
	r.GET("/users/:email/watchlist", userController.GetWatchlist)

	// Review routes
	r.POST("/reviews", reviewController.Create)
	r.GET("/reviews", reviewController.ListAll)
	r.GET("/reviews/:id", reviewController.Get)
	r.PUT("/reviews/:id", reviewController.Update)
	r.DELETE("/reviews/:id", reviewController.Delete)
	r.GET("/highest-rated-games", reviewController.ListTopRated)

	// Watchlist routes
	r.POST("/watchlist/add", watchlistController.Add)
	r.GET("/watchlist/check/:reviewId", watchlistController.Check)
	r.DELETE("/watchlist/:reviewId", watchlistController.Remove)

	log.Printf("Chill Gamer server is running on port: %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
