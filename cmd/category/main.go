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
	"bookstore/internal/modules/category"
	"bookstore/internal/pkg/log"
	"bookstore/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config load failed: %v", err)
	}
	logger := log.New(cfg.AppEnv, "category-service")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "category.db"
	}
	db, err := database.ConnectAndMigrate(dsn, &domain.Category{})
	if err != nil {
		stdlog.Fatalf("db connect failed: %v", err)
	}

	handler := category.NewHandler(repository.NewCategoryRepository(db))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	handler.RegisterRoutes(r.Group("/"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3007"
	}
	logger.Info().Str("port", port).Msg("category service listening")
	if err := r.Run(":" + port); err != nil {
		stdlog.Fatal(err)
	}
}
