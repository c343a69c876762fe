package clients

import (
	"context"
	"time"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/log"
)

// AuthClient talks to the user/auth service.
type AuthClient struct {
	http *httpClient
}

func NewAuthClient(baseURL string, timeout time.Duration, logger log.Logger) *AuthClient {
	return &AuthClient{http: newHTTPClient("auth-service", baseURL, timeout, logger)}
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (c *AuthClient) Signup(ctx context.Context, req SignupRequest) (*TokenPair, error) {
	var out TokenPair
	if err := c.http.post(ctx, "/signup", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	var out TokenPair
	if err := c.http.post(ctx, "/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Logout(ctx context.Context, refreshToken string) (*MessageResponse, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out MessageResponse
	if err := c.http.post(ctx, "/logout", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*AccessTokenResponse, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out AccessTokenResponse
	if err := c.http.post(ctx, "/refresh-token", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) ListUsers(ctx context.Context, bearer string) ([]domain.User, error) {
	var out []domain.User
	if err := c.http.get(ctx, "/users", bearer, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FacadeClient calls the gateway's own public surface. The composite delete
// uses it to read the aggregated book through the same path a client would,
// carrying the caller's bearer credential.
type FacadeClient struct {
	http *httpClient
}

func NewFacadeClient(baseURL string, timeout time.Duration, logger log.Logger) *FacadeClient {
	return &FacadeClient{http: newHTTPClient("facade", baseURL, timeout, logger)}
}

func (c *FacadeClient) GetBookDetails(ctx context.Context, idOrISBN, bearer string) (*domain.BookDetails, error) {
	var out domain.BookDetails
	if err := c.http.get(ctx, "/books/"+idOrISBN, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
