package clients

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/log"
)

// BookClient talks to the book service, owner of the canonical record.
type BookClient struct {
	http *httpClient
}

func NewBookClient(baseURL string, timeout time.Duration, logger log.Logger) *BookClient {
	return &BookClient{http: newHTTPClient("book-service", baseURL, timeout, logger)}
}

// CreateBookRequest is the facade-side input: flat fields, the orchestrator
// splits them across the three services.
type CreateBookRequest struct {
	Title      string  `json:"title" binding:"required"`
	ISBN       string  `json:"isbn" binding:"required"`
	Price      float64 `json:"price"`
	PubDate    string  `json:"pubDate"`
	AuthorName string  `json:"author_name" binding:"required"`
	Genre      string  `json:"genre" binding:"required"`
}

func (c *BookClient) Create(ctx context.Context, req CreateBookRequest) (*domain.Book, error) {
	book := domain.Book{
		Title:   req.Title,
		ISBN:    req.ISBN,
		Price:   req.Price,
		PubDate: req.PubDate,
	}
	var out domain.Book
	if err := c.http.post(ctx, "/books", "", book, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookClient) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	var out domain.Book
	if err := c.http.get(ctx, "/books/"+id, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookClient) List(ctx context.Context) ([]domain.Book, error) {
	var out []domain.Book
	if err := c.http.get(ctx, "/books", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookClient) DeleteByISBN(ctx context.Context, isbn, bearer string) error {
	return c.http.delete(ctx, "/books/"+isbn, bearer, nil)
}

// AuthorClient talks to the author service, keyed by ISBN for lookups.
type AuthorClient struct {
	http *httpClient
}

func NewAuthorClient(baseURL string, timeout time.Duration, logger log.Logger) *AuthorClient {
	return &AuthorClient{http: newHTTPClient("author-service", baseURL, timeout, logger)}
}

func (c *AuthorClient) Create(ctx context.Context, isbn, authorName string) (*domain.Author, error) {
	body := domain.Author{ISBN: isbn, AuthorName: authorName}
	var out domain.Author
	if err := c.http.post(ctx, "/authors", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthorClient) GetByISBN(ctx context.Context, isbn string) (*domain.Author, error) {
	var out domain.Author
	if err := c.http.get(ctx, "/authors/isbn/"+isbn, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthorClient) DeleteByID(ctx context.Context, id int64, bearer string) error {
	return c.http.delete(ctx, fmt.Sprintf("/authors/%d", id), bearer, nil)
}

// CategoryClient talks to the category service, keyed by ISBN for lookups.
type CategoryClient struct {
	http *httpClient
}

func NewCategoryClient(baseURL string, timeout time.Duration, logger log.Logger) *CategoryClient {
	return &CategoryClient{http: newHTTPClient("category-service", baseURL, timeout, logger)}
}

func (c *CategoryClient) Create(ctx context.Context, isbn, genre string) (*domain.Category, error) {
	body := domain.Category{ISBN: isbn, Genre: genre}
	var out domain.Category
	if err := c.http.post(ctx, "/categories", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CategoryClient) GetByISBN(ctx context.Context, isbn string) (*domain.Category, error) {
	var out domain.Category
	if err := c.http.get(ctx, "/categories/isbn/"+isbn, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CategoryClient) DeleteByID(ctx context.Context, id int64, bearer string) error {
	return c.http.delete(ctx, fmt.Sprintf("/categories/%d", id), bearer, nil)
}
