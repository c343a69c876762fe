package gateway

import (
	"context"

	"bookstore/internal/clients"
	"bookstore/internal/domain"
)

// Client interfaces mirror internal/clients so the orchestrator can be
// tested against fakes without real downstream servers.

type BookServiceClient interface {
	Create(ctx context.Context, req clients.CreateBookRequest) (*domain.Book, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	DeleteByISBN(ctx context.Context, isbn, bearer string) error
}

type AuthorServiceClient interface {
	Create(ctx context.Context, isbn, authorName string) (*domain.Author, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Author, error)
	DeleteByID(ctx context.Context, id int64, bearer string) error
}

type CategoryServiceClient interface {
	Create(ctx context.Context, isbn, genre string) (*domain.Category, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Category, error)
	DeleteByID(ctx context.Context, id int64, bearer string) error
}

// FacadeReader reads the gateway's own composite endpoint; the delete path
// uses it to learn author/category ids before removing anything.
type FacadeReader interface {
	GetBookDetails(ctx context.Context, idOrISBN, bearer string) (*domain.BookDetails, error)
}

type AuthServiceClient interface {
	Signup(ctx context.Context, req clients.SignupRequest) (*clients.TokenPair, error)
	Login(ctx context.Context, req clients.LoginRequest) (*clients.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) (*clients.MessageResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*clients.AccessTokenResponse, error)
	ListUsers(ctx context.Context, bearer string) ([]domain.User, error)
}
