package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ilystsov/vocabulary-builder/internal/auth"
	"github.com/ilystsov/vocabulary-builder/internal/config"
	"github.com/ilystsov/vocabulary-builder/internal/database"
	"github.com/ilystsov/vocabulary-builder/internal/handler"
	"github.com/ilystsov/vocabulary-builder/internal/middleware"
	"github.com/ilystsov/vocabulary-builder/internal/vocab"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	wordService := vocab.NewWordService(db)
	userService := vocab.NewUserService(db)
	favoriteService := vocab.NewFavoriteService(db)
	authService := auth.NewService(db, cfg.SecretKey, cfg.AccessTokenTTL)

	wordHandler := handler.NewWordHandler(wordService)
	authHandler := handler.NewAuthHandler(authService, userService, cfg.BcryptCost, int(cfg.AccessTokenTTL.Seconds()))
	userHandler := handler.NewUserHandler(favoriteService)

	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/new_word", wordHandler.NewWord)

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/learn", middleware.AuthMiddleware(authService), authHandler.Learn(wordService))

	users := r.Group("/users")
	{
		users.POST("/:user_id/words", userHandler.SaveWord)
		users.DELETE("/:user_id/words", userHandler.RemoveWord)
		users.GET("/:user_id/words", userHandler.SavedWords)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
