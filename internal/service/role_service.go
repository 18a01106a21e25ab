package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

type RoleService interface {
	List(ctx context.Context) ([]dto.RoleResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error)
	Create(ctx context.Context, req *dto.RoleRequest) (*dto.RoleResponse, error)
	Update(ctx context.Context, id int64, req *dto.RoleRequest) (*dto.RoleResponse, error)
	Delete(ctx context.Context, id int64) error
	// EnsureRole returns the named role, creating it when missing.
	EnsureRole(ctx context.Context, name, description string) (*dto.RoleResponse, error)
}

type roleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewRoleService(repo *repository.Repository, logger *zap.Logger) RoleService {
	return &roleService{repo: repo, logger: logger}
}

func (s *roleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.Role.List(ctx)
	if err != nil {
		s.logger.Error("list roles failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		result = append(result, *toRoleResponse(&roles[i]))
	}
	return result, nil
}

func (s *roleService) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := s.repo.Role.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("get role failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) Create(ctx context.Context, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	if blank(req.Name) {
		return nil, ErrMissingFields
	}

	role := &model.Role{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.repo.Role.Create(ctx, role); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrRoleExists
		}
		s.logger.Error("create role failed", zap.Error(err))
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) Update(ctx context.Context, id int64, req *dto.RoleRequest) (*dto.RoleResponse, error) {
	if blank(req.Name) {
		return nil, ErrMissingFields
	}

	rows, err := s.repo.Role.Update(ctx, id, map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrRoleExists
		}
		s.logger.Error("update role failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRoleNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *roleService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Role.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete role failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (s *roleService) EnsureRole(ctx context.Context, name, description string) (*dto.RoleResponse, error) {
	role, err := s.repo.Role.GetByName(ctx, name)
	if err == nil {
		return toRoleResponse(role), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, err := s.Create(ctx, &dto.RoleRequest{Name: name, Description: description})
	if errors.Is(err, ErrRoleExists) {
		// created concurrently
		role, err = s.repo.Role.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return toRoleResponse(role), nil
	}
	return created, err
}
