package repository

import (
	"context"

	"gorm.io/gorm"

	"bookstore/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Category, error) {
	var c domain.Category
	tx := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	tx := r.db.WithContext(ctx).Order("category_id").Find(&categories)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return categories, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
