package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"bookstore/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Name = strings.TrimSpace(u.Name)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).Order("id").Find(&users)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return users, nil
}
