package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bookstore/internal/database"
	"bookstore/internal/repository"
)

// Deletes expired refresh-token rows. Expired tokens are otherwise only
// removed lazily when presented, so a cron run keeps the table from
// accumulating rows for clients that never came back.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	deleted, err := repository.NewRefreshTokenRepository(db).DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", deleted)
}
