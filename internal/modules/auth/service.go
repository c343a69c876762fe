package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/log"
)

// Service owns the refresh-token lifecycle: issue, verify, rotate access
// off a stored refresh token, revoke. Every refresh failure collapses to
// ErrInvalidRefreshToken at the API edge; the precise reason is only
// logged, so a caller cannot learn which sub-check rejected it.
type Service struct {
	users  UserRepositoryInterface
	tokens RefreshTokenRepositoryInterface
	signer TokenManagerInterface
	logger log.Logger
}

func NewService(
	users UserRepositoryInterface,
	tokens RefreshTokenRepositoryInterface,
	signer TokenManagerInterface,
	logger log.Logger,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		signer: signer,
		logger: logger,
	}
}

// Signup creates the user and issues a token pair. The role is whatever
// the calling endpoint forced into req.Role; anything unrecognized is
// stored as a plain user.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*TokenPairResponse, error) {
	exists, err := s.users.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenPairResponse, error) {
	user, err := s.users.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh mints a new access token off a stored refresh token. The refresh
// token itself is not rotated: it stays valid until expiry or logout.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.signer.VerifyRefresh(refreshToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("refresh rejected: signature or type check failed")
		return "", ErrInvalidRefreshToken
	}

	stored, err := s.tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Int64("user_id", claims.UserID).Msg("refresh rejected: token not found")
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	if stored.IsExpired(time.Now()) {
		// Lazy revocation: the first use past expiry removes the row.
		if err := s.tokens.Delete(ctx, refreshToken); err != nil {
			return "", err
		}
		s.logger.Warn().Int64("user_id", claims.UserID).Msg("refresh rejected: token expired, row deleted")
		return "", ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Int64("user_id", stored.UserID).Msg("refresh rejected: user missing")
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	return s.signer.GenerateAccessToken(user)
}

// Logout revokes a refresh token. Revocation is idempotent: a token that
// is already gone still answers with a success message.
func (s *Service) Logout(ctx context.Context, refreshToken string) (string, error) {
	if _, err := s.signer.VerifyRefresh(refreshToken); err != nil {
		s.logger.Warn().Err(err).Msg("logout rejected: malformed refresh token")
		return "", ErrInvalidRefreshToken
	}

	if _, err := s.tokens.GetByToken(ctx, refreshToken); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Refresh token is already invalidated or does not exist", nil
		}
		return "", err
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return "", err
	}
	return "Logout successful", nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) issueTokenPair(ctx context.Context, user *domain.User) (*TokenPairResponse, error) {
	accessToken, err := s.signer.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, expiresAt, err := s.signer.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(ctx, &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
