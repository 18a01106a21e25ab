package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

// UserService manages lecturer and admin accounts.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("get user failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if blank(req.Title, req.FirstName, req.LastName, req.Email, req.PhoneNumber) || req.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Title:       strings.TrimSpace(req.Title),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    string(hash),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("id", user.ID))
	return toUserResponse(user), nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if blank(req.Title, req.FirstName, req.LastName, req.Email, req.PhoneNumber) {
		return nil, ErrMissingFields
	}

	rows, err := s.repo.User.Update(ctx, id, map[string]interface{}{
		"title":        strings.TrimSpace(req.Title),
		"first_name":   strings.TrimSpace(req.FirstName),
		"last_name":    strings.TrimSpace(req.LastName),
		"email":        strings.TrimSpace(req.Email),
		"phone_number": strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		s.logger.Error("update user failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.User.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete user failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	s.logger.Info("user deleted", zap.Int64("id", id))
	return nil
}
