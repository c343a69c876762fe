package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"bookstore/internal/clients"
	"bookstore/internal/domain"
	"bookstore/internal/pkg/log"
)

// Service is the composite-operation orchestrator. It presents book-centric
// operations as if one service backed them while sequencing calls across
// the book, author and category services.
//
// Partial-failure policy: the book record is canonical. Its create/delete
// failures abort the operation; author and category failures after a
// successful book write are logged and the book is left in place (create)
// or the operation still succeeds (delete). Nothing is ever retried.
type Service struct {
	books      BookServiceClient
	authors    AuthorServiceClient
	categories CategoryServiceClient
	facade     FacadeReader
	logger     log.Logger
}

func NewService(
	books BookServiceClient,
	authors AuthorServiceClient,
	categories CategoryServiceClient,
	facade FacadeReader,
	logger log.Logger,
) *Service {
	return &Service{
		books:      books,
		authors:    authors,
		categories: categories,
		facade:     facade,
		logger:     logger,
	}
}

// CreateBook writes Book, then Author, then Category, strictly in that
// order. There is no compensation: a failure after the book write leaves
// the book record behind.
func (s *Service) CreateBook(ctx context.Context, req clients.CreateBookRequest) (*domain.Book, error) {
	book, err := s.books.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w, if status code is 422 means book already exists", err)
	}

	if _, err := s.authors.Create(ctx, req.ISBN, req.AuthorName); err != nil {
		s.logger.Error().Err(err).Str("isbn", req.ISBN).Msg("author create failed after book create; book left in place")
		return nil, fmt.Errorf("failed to create book: %w, if status code is 422 means book already exists", err)
	}

	if _, err := s.categories.Create(ctx, req.ISBN, req.Genre); err != nil {
		s.logger.Error().Err(err).Str("isbn", req.ISBN).Msg("category create failed after book create; book left in place")
		return nil, fmt.Errorf("failed to create book: %w, if status code is 422 means book already exists", err)
	}

	return book, nil
}

// GetBook returns the full composite detail, failing hard when either the
// author or the category lookup fails.
func (s *Service) GetBook(ctx context.Context, id string) (*domain.BookDetails, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if clients.IsStatus(err, http.StatusNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	author, category, err := s.fetchRefs(ctx, book.ISBN)
	if err != nil {
		return nil, err
	}

	return composeDetails(book, author, category, nil), nil
}

// ListBooks enriches every book with its author and category. A per-book
// lookup failure degrades that entry to unavailable markers instead of
// failing the whole list.
func (s *Service) ListBooks(ctx context.Context) ([]domain.BookDetails, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.BookDetails, 0, len(books))
	for i := range books {
		book := &books[i]
		author, category, err := s.fetchRefs(ctx, book.ISBN)
		if err != nil {
			s.logger.Warn().Err(err).Str("isbn", book.ISBN).Msg("detail lookup failed, returning degraded entry")
			details = append(details, *composeDetails(book, nil, nil, err))
			continue
		}
		details = append(details, *composeDetails(book, author, category, nil))
	}
	return details, nil
}

// DeleteBook removes a composite book. The read-back and the book delete
// are fatal; author and category deletes are best-effort cleanup.
func (s *Service) DeleteBook(ctx context.Context, isbn, bearer string) (string, error) {
	details, err := s.facade.GetBookDetails(ctx, isbn, bearer)
	if err != nil {
		return "", fmt.Errorf("book fetch failed: %w", err)
	}

	if err := s.books.DeleteByISBN(ctx, isbn, bearer); err != nil {
		return "", fmt.Errorf("book delete failed: %w", err)
	}

	if details.Author != nil && details.Author.AuthorID != 0 {
		if err := s.authors.DeleteByID(ctx, details.Author.AuthorID, bearer); err != nil {
			s.logger.Warn().Err(err).Int64("author_id", details.Author.AuthorID).Msg("author delete failed, continuing")
		}
	}

	if details.Category != nil && details.Category.CategoryID != 0 {
		if err := s.categories.DeleteByID(ctx, details.Category.CategoryID, bearer); err != nil {
			s.logger.Warn().Err(err).Int64("category_id", details.Category.CategoryID).Msg("category delete failed, continuing")
		}
	}

	return fmt.Sprintf("Book %s and its associations deleted successfully.", isbn), nil
}

// fetchRefs looks up author and category for an ISBN concurrently. Both
// lookups always complete before it returns; the author error wins when
// both fail.
func (s *Service) fetchRefs(ctx context.Context, isbn string) (*domain.Author, *domain.Category, error) {
	var (
		wg       sync.WaitGroup
		author   *domain.Author
		category *domain.Category
		authErr  error
		catErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		author, authErr = s.authors.GetByISBN(ctx, isbn)
	}()
	go func() {
		defer wg.Done()
		category, catErr = s.categories.GetByISBN(ctx, isbn)
	}()
	wg.Wait()

	if authErr != nil {
		return nil, nil, authErr
	}
	if catErr != nil {
		return nil, nil, catErr
	}
	return author, category, nil
}

func composeDetails(book *domain.Book, author *domain.Author, category *domain.Category, lookupErr error) *domain.BookDetails {
	d := &domain.BookDetails{
		Title:   book.Title,
		ISBN:    book.ISBN,
		Price:   book.Price,
		PubDate: book.PubDate,
	}
	if lookupErr != nil {
		d.Error = "Failed to fetch author or category details"
		return d
	}
	if author != nil {
		d.Author = &domain.AuthorRef{AuthorID: author.AuthorID, AuthorName: author.AuthorName}
	}
	if category != nil {
		d.Category = &domain.CategoryRef{CategoryID: category.CategoryID, Genre: category.Genre}
	}
	return d
}
