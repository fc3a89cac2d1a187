package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/auth"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/repository"
	apperrors "github.com/vitorsm19/aisel-tech-case-vitor/pkg/util/errorutil"
)

// InvalidCredentialsMessage is returned for unknown users and wrong passwords alike.
const InvalidCredentialsMessage = "Invalid credentials"

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserInfo
}

// AuthService coordinates login.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		logger:   logger,
	}
}

// Login authenticates a user by username and password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("login rejected", zap.String("username", username), zap.String("reason", "unknown user"))
			return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", zap.String("username", username), zap.String("reason", "password mismatch"))
		return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.logger.Info("login succeeded", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &LoginResult{Token: token, ExpiresAt: exp, User: user.Info()}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// SeedUsers hashes the plaintext fixture passwords.
func SeedUsers(seeds []domain.SeedUser, cost int) ([]domain.User, error) {
	users := make([]domain.User, 0, len(seeds))
	for _, seed := range seeds {
		hash, err := auth.HashPassword(seed.Password, cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", seed.Username, err)
		}
		users = append(users, domain.User{
			ID:           seed.ID,
			Username:     seed.Username,
			PasswordHash: hash,
			Role:         seed.Role,
		})
	}
	return users, nil
}
