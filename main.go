package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/erickmeikoki/Box/config"
	"github.com/erickmeikoki/Box/controllers"
	"github.com/erickmeikoki/Box/data_access"
	"github.com/erickmeikoki/Box/middleware"
	"github.com/erickmeikoki/Box/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	log.Printf("Configuration loaded for environment: %s", cfg.Env)

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer mongodb.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := mongodb.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal("Failed to create indexes: ", err)
	}
	cancel()

	// Repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	reviewRepo := data_access.NewReviewRepository(mongodb)
	watchlistRepo := data_access.NewWatchlistRepository(mongodb)
	tmdbClient := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	movieService := services.NewMovieService(movieRepo, tmdbClient)
	reviewService := services.NewReviewService(reviewRepo, movieService, userRepo)
	watchlistService := services.NewWatchlistService(watchlistRepo, movieService)

	// Controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(movieService)
	reviewController := controllers.NewReviewController(reviewService)
	watchlistController := controllers.NewWatchlistController(watchlistService)
	userController := controllers.NewUserController(authService)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(setupCORS())
	r.Use(middleware.RateLimit(rate.NewLimiter(20, 40)))

	registerRoutes(r, cfg.JWTSecret, authController, movieController, reviewController, watchlistController, userController)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
	log.Println("Server exiting")
}

func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"X-CSRF-Token",
		"Authorization",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}

func registerRoutes(
	r *gin.Engine,
	jwtSecret string,
	authController *controllers.AuthController,
	movieController *controllers.MovieController,
	reviewController *controllers.ReviewController,
	watchlistController *controllers.WatchlistController,
	userController *controllers.UserController,
) {
	authRequired := middleware.Auth(jwtSecret)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authRequired, authController.Me)
	}

	movies := api.Group("/movies")
	{
		movies.GET("", movieController.List)
		movies.GET("/search", movieController.Search)
		movies.GET("/trending", movieController.Trending)
		movies.GET("/:id", movieController.GetByID)
		movies.GET("/:id/similar", movieController.Similar)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewController.List)

		protected := reviews.Group("", authRequired)
		protected.POST("", reviewController.Create)
		protected.GET("/user", reviewController.ListMine)
		protected.PUT("/:id", reviewController.Update)
		protected.DELETE("/:id", reviewController.Delete)
		protected.POST("/:id/like", reviewController.Like)
		protected.POST("/:id/dislike", reviewController.Dislike)
	}

	watchlist := api.Group("/watchlist", authRequired)
	{
		watchlist.GET("", watchlistController.List)
		watchlist.POST("", watchlistController.Add)
		watchlist.DELETE("/:movieId", watchlistController.Remove)
	}

	users := api.Group("/users", authRequired)
	{
		users.PUT("/avatar", userController.UpdateAvatar)
	}
}
