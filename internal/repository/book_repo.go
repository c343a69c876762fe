package repository

import (
	"context"

	"gorm.io/gorm"

	"bookstore/internal/domain"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	var b domain.Book
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	var b domain.Book
	tx := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Book{}).Where("isbn = ?", isbn).Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *BookRepository) List(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	tx := r.db.WithContext(ctx).Order("id").Find(&books)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return books, nil
}

// DeleteByISBN reports gorm.ErrRecordNotFound when nothing matched so the
// handler can answer 404 instead of silently succeeding.
func (r *BookRepository) DeleteByISBN(ctx context.Context, isbn string) error {
	tx := r.db.WithContext(ctx).Where("isbn = ?", isbn).Delete(&domain.Book{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
