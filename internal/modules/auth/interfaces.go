package auth

import (
	"context"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/token"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
}

// RefreshTokenRepositoryInterface is the refresh-token store.
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByToken(ctx context.Context, tokenValue string) (*domain.RefreshToken, error)
	Delete(ctx context.Context, tokenValue string) error
}

// TokenManagerInterface signs and verifies the token pair.
type TokenManagerInterface interface {
	GenerateAccessToken(u *domain.User) (string, error)
	GenerateRefreshToken(userID int64) (string, time.Time, error)
	VerifyRefresh(tokenStr string) (*token.RefreshClaims, error)
}
