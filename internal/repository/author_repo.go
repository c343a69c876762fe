package repository

import (
	"context"

	"gorm.io/gorm"

	"bookstore/internal/domain"
)

type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) Create(ctx context.Context, a *domain.Author) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AuthorRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Author, error) {
	var a domain.Author
	tx := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	var authors []domain.Author
	tx := r.db.WithContext(ctx).Order("author_id").Find(&authors)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return authors, nil
}

func (r *AuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Author{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
