package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
)

// AdminBootstrap is the outcome of CreateAdmin.
type AdminBootstrap struct {
	User *dto.UserResponse
	Role *dto.RoleResponse
	// Created is false when the email already belonged to a user, who was
	// given the role and otherwise left unchanged.
	Created bool
}

// CreateAdmin ensures roleName exists, creates the user described by req and
// assigns the role, all in one transaction. Running it again for the same
// email assigns the role to the existing account, so an interrupted run can
// be repeated.
func CreateAdmin(ctx context.Context, repo *repository.Repository, req *dto.CreateUserRequest, roleName string, logger *zap.Logger) (*AdminBootstrap, error) {
	var out AdminBootstrap

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		role, err := NewRoleService(tx, logger).EnsureRole(ctx, roleName, "Full administrative access")
		if err != nil {
			return err
		}
		out.Role = role

		// look up first: a unique violation would abort the transaction
		existing, err := tx.User.GetByEmail(ctx, strings.TrimSpace(req.Email))
		switch {
		case err == nil:
			out.User = toUserResponse(existing)
		case errors.Is(err, gorm.ErrRecordNotFound):
			user, err := NewUserService(tx, logger).Create(ctx, req)
			if err != nil {
				return err
			}
			out.User, out.Created = user, true
		default:
			return err
		}

		return NewRoleAssignmentService(tx, logger).Allocate(ctx, role.ID, []int64{out.User.ID})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
