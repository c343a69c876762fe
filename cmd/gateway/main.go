package main

import (
	stdlog "log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookstore/internal/clients"
	"bookstore/internal/config"
	"bookstore/internal/middleware"
	"bookstore/internal/modules/gateway"
	"bookstore/internal/pkg/log"
	"bookstore/internal/pkg/permissions"
	"bookstore/internal/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config load failed: %v", err)
	}
	logger := log.New(cfg.AppEnv, "gateway")

	tokenManager := token.NewManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.Issuer, cfg.AccessTTL, cfg.RefreshTTL)
	resolver := permissions.NewResolver()

	bookClient := clients.NewBookClient(cfg.BookBaseURL, cfg.ClientTimeout, logger)
	authorClient := clients.NewAuthorClient(cfg.AuthorBaseURL, cfg.ClientTimeout, logger)
	categoryClient := clients.NewCategoryClient(cfg.CategoryBaseURL, cfg.ClientTimeout, logger)
	authClient := clients.NewAuthClient(cfg.AuthBaseURL, cfg.ClientTimeout, logger)
	facadeClient := clients.NewFacadeClient(cfg.FacadeBaseURL, cfg.ClientTimeout, logger)

	orchestrator := gateway.NewService(bookClient, authorClient, categoryClient, facadeClient, logger)
	bookHandler := gateway.NewBookHandler(orchestrator)
	userHandler := gateway.NewUserHandler(authClient, gateway.CookieConfig{
		Secure:     cfg.CookieSecure,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	})

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/")
	userHandler.RegisterPublicRoutes(root)

	protected := r.Group("/")
	protected.Use(middleware.BearerAuth(tokenManager, resolver))
	bookHandler.RegisterRoutes(protected)
	userHandler.RegisterProtectedRoutes(protected)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	logger.Info().Str("port", port).Msg("gateway listening")
	if err := r.Run(":" + port); err != nil {
		stdlog.Fatal(err)
	}
}
