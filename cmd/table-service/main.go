package main

import (
	"log"
	"os"

	"shengji-tractor/internal/common/config"
	"shengji-tractor/internal/common/database"
	"shengji-tractor/internal/docs"
	"shengji-tractor/internal/game/handler"
	"shengji-tractor/internal/game/repository"
	"shengji-tractor/internal/game/service"
	"shengji-tractor/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Shengji Tractor Table Service API
// @version 1.0
// @description HTTP façade over the Shengji/Tractor rules engine
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)
	cache := database.NewRedisCache(redisClient)

	store := database.NewGormRepository(db)
	gameRepo := repository.NewGameRepository(store)
	gameService := service.NewGameService(gameRepo, cache)
	gameHandler := handler.NewGameHandler(gameService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.TraceID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS("*"))
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(100, 200))

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.GET("/health", gameHandler.HealthCheck)
	api.GET("/ready", gameHandler.ReadyCheck)

	protected := api.Group("/")
	protected.Use(middleware.SeatAuth(cfg.JWTSecret))
	gameHandler.RegisterRoutes(protected)

	port := envOr("PORT", cfg.Port)
	log.Printf("Table service starting on port %s", port)
	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
