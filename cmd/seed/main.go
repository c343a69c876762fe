package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"bookstore/internal/database"
	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

// Seeds local development databases: an admin and a regular user in the
// auth store, and a handful of books with their author/category rows in
// the three catalog stores. Each service keeps its own sqlite file, same
// as in a real deployment where each owns its own database.
func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	seedUsers(ctx, envOr("AUTH_DATABASE_URL", "auth.db"))
	seedCatalog(ctx,
		envOr("BOOK_DATABASE_URL", "book.db"),
		envOr("AUTHOR_DATABASE_URL", "author.db"),
		envOr("CATEGORY_DATABASE_URL", "category.db"),
	)

	log.Println("seed completed")
}

func seedUsers(ctx context.Context, dsn string) {
	db, err := database.ConnectAndMigrate(dsn, &domain.User{}, &domain.RefreshToken{})
	if err != nil {
		log.Fatalf("auth db connect failed: %v", err)
	}
	users := repository.NewUserRepository(db)

	for _, u := range []struct {
		name, email, password string
		role                  domain.UserRole
	}{
		{"admin", "admin@bookstore.local", "admin123", domain.RoleAdmin},
		{"reader", "reader@bookstore.local", "reader123", domain.RoleUser},
	} {
		exists, err := users.ExistsByName(ctx, u.name)
		if err != nil {
			log.Fatalf("seed user lookup failed: %v", err)
		}
		if exists {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash failed: %v", err)
		}
		if err := users.Create(ctx, &domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}); err != nil {
			log.Fatalf("seed user create failed: %v", err)
		}
		log.Printf("seeded user %s (%s)", u.name, u.role)
	}
}

func seedCatalog(ctx context.Context, bookDSN, authorDSN, categoryDSN string) {
	bookDB, err := database.ConnectAndMigrate(bookDSN, &domain.Book{})
	if err != nil {
		log.Fatalf("book db connect failed: %v", err)
	}
	authorDB, err := database.ConnectAndMigrate(authorDSN, &domain.Author{})
	if err != nil {
		log.Fatalf("author db connect failed: %v", err)
	}
	categoryDB, err := database.ConnectAndMigrate(categoryDSN, &domain.Category{})
	if err != nil {
		log.Fatalf("category db connect failed: %v", err)
	}

	books := repository.NewBookRepository(bookDB)
	authors := repository.NewAuthorRepository(authorDB)
	categories := repository.NewCategoryRepository(categoryDB)

	for _, b := range []struct {
		title, isbn, pubDate, authorName, genre string
		price                                   float64
	}{
		{"The Go Programming Language", "9780134190440", "2015-11-16", "Alan Donovan", "Programming", 39.99},
		{"Designing Data-Intensive Applications", "9781449373320", "2017-04-11", "Martin Kleppmann", "Databases", 44.99},
		{"The Pragmatic Programmer", "9780135957059", "2019-09-13", "David Thomas", "Programming", 49.99},
	} {
		exists, err := books.ExistsByISBN(ctx, b.isbn)
		if err != nil {
			log.Fatalf("seed book lookup failed: %v", err)
		}
		if exists {
			continue
		}
		if err := books.Create(ctx, &domain.Book{Title: b.title, ISBN: b.isbn, Price: b.price, PubDate: b.pubDate}); err != nil {
			log.Fatalf("seed book create failed: %v", err)
		}
		if err := authors.Create(ctx, &domain.Author{ISBN: b.isbn, AuthorName: b.authorName}); err != nil {
			log.Fatalf("seed author create failed: %v", err)
		}
		if err := categories.Create(ctx, &domain.Category{ISBN: b.isbn, Genre: b.genre}); err != nil {
			log.Fatalf("seed category create failed: %v", err)
		}
		log.Printf("seeded book %s", b.isbn)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
