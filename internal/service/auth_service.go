package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/jwt"
)

// TokenStore keeps revoked token ids. *redis.Client implements it.
type TokenStore interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate verifies the token and resolves the caller from the database.
	Authenticate(ctx context.Context, token string) (*Identity, error)
	Logout(ctx context.Context, id *Identity) error
	Me(ctx context.Context, id *Identity) (*dto.ProfileResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	tokens TokenStore // nil without Redis
	logger *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		tokens: tokens,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	// 1. look up the account
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user by email failed", zap.Error(err))
		return nil, err
	}

	// 2. bcrypt compare
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login rejected", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 3. sign
	token, err := s.jwtMgr.GenerateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("login succeeded", zap.Int64("user_id", user.ID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TTL().Seconds()),
		User:      *toProfileResponse(user),
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.tokens != nil {
		revoked, err := s.tokens.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist lookup failed, skipping", zap.Error(err))
		} else if revoked {
			return nil, ErrInvalidToken
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return &Identity{
		UserID:    user.ID,
		Email:     user.Email,
		Roles:     user.RoleNames(),
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the caller's token until it would have expired.
func (s *authService) Logout(ctx context.Context, id *Identity) error {
	if s.tokens == nil {
		return nil
	}
	if err := s.tokens.BlacklistToken(ctx, id.TokenID, time.Until(id.ExpiresAt)); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, id *Identity) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toProfileResponse(user), nil
}
