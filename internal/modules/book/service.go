package book

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

var ErrDuplicateISBN = errors.New("duplicate isbn")

// Service is a thin layer over the book store; the only rule it owns is
// ISBN uniqueness.
type Service struct {
	books *repository.BookRepository
}

func NewService(books *repository.BookRepository) *Service {
	return &Service{books: books}
}

func (s *Service) Create(ctx context.Context, b *domain.Book) error {
	exists, err := s.books.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateISBN
	}
	return s.books.Create(ctx, b)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.List(ctx)
}

func (s *Service) DeleteByISBN(ctx context.Context, isbn string) error {
	return s.books.DeleteByISBN(ctx, isbn)
}
