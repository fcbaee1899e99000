package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/roshanls1997/chai-backend/docs"
	"github.com/roshanls1997/chai-backend/internal/handler"
	"github.com/roshanls1997/chai-backend/internal/service"
	"github.com/roshanls1997/chai-backend/internal/shared"
	"github.com/roshanls1997/chai-backend/internal/storage/postgres"
	"github.com/roshanls1997/chai-backend/internal/storage/s3"
)

// corsOrigins reads the comma-separated CORS_ORIGIN list. When unset it falls
// back to the local dev frontend instead of handing cors.New an empty origin,
// which it rejects with a panic at startup.
func corsOrigins() []string {
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"http://localhost:3000"}
}

// @title chai-backend API
// @version 1.0
// @description User-account backend: auth with rotating refresh tokens, profile and media updates, channel subscriptions and watch history.
// @BasePath /api/v1/users
func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("Error loading .env.local file")
	}

	logger, err := shared.NewLogger(shared.LogConfigFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx := context.Background()

	db, err := postgres.InitDB(ctx)
	if err != nil {
		sugar.Fatalw("database init failed", "error", err)
	}
	defer db.Close()

	media, err := s3.NewMediaStorage(s3.ConfigFromEnv())
	if err != nil {
		sugar.Fatalw("media storage init failed", "error", err)
	}

	userService := service.NewUserService(db, service.TokenConfigFromEnv())
	channelService := service.NewChannelService(db)
	uploadService := service.NewUploadService(media)

	h := handler.NewHandler(userService, channelService, uploadService, sugar)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		sugar.Errorw("panic recovered", "error", recovered)
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h.RegisterRoutes(r)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	sugar.Infow("server starting", "port", port)
	log.Fatal(r.Run(":" + port))
}
