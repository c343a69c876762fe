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
	"bookstore/internal/modules/author"
	"bookstore/internal/pkg/log"
	"bookstore/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config load failed: %v", err)
	}
	logger := log.New(cfg.AppEnv, "author-service")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "author.db"
	}
	db, err := database.ConnectAndMigrate(dsn, &domain.Author{})
	if err != nil {
		stdlog.Fatalf("db connect failed: %v", err)
	}

	handler := author.NewHandler(repository.NewAuthorRepository(db))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	handler.RegisterRoutes(r.Group("/"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	logger.Info().Str("port", port).Msg("author service listening")
	if err := r.Run(":" + port); err != nil {
		stdlog.Fatal(err)
	}
}
