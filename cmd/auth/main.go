package main

import (
	stdlog "log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/domain"
	"bookstore/internal/middleware"
	"bookstore/internal/modules/auth"
	"bookstore/internal/pkg/log"
	"bookstore/internal/pkg/token"
	"bookstore/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config load failed: %v", err)
	}
	logger := log.New(cfg.AppEnv, "auth-service")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "auth.db"
	}
	db, err := database.ConnectAndMigrate(dsn, &domain.User{}, &domain.RefreshToken{})
	if err != nil {
		stdlog.Fatalf("db connect failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	tokenManager := token.NewManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.Issuer, cfg.AccessTTL, cfg.RefreshTTL)

	service := auth.NewService(userRepo, tokenRepo, tokenManager, logger)
	handler := auth.NewHandler(service)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))

	handler.RegisterRoutes(r.Group("/"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3011"
	}
	logger.Info().Str("port", port).Msg("auth service listening")
	if err := r.Run(":" + port); err != nil {
		stdlog.Fatal(err)
	}
}
