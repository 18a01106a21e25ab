package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

// AllocationService assigns users to a parent entity through a join table.
// The same implementation serves course lecturers and role assignments.
type AllocationService interface {
	// Allocate adds every user to the parent. Existing pairs are kept;
	// an unknown user aborts the whole call.
	Allocate(ctx context.Context, parentID int64, userIDs []int64) error
	ClearAll(ctx context.Context, parentID int64) error
	ClearSpecific(ctx context.Context, parentID, userID int64) error
}

// AllocationPicker selects the join table from a (possibly transactional) Repository.
type AllocationPicker func(r *repository.Repository) repository.AllocationRepository

type allocationService struct {
	repo           *repository.Repository
	pick           AllocationPicker
	parentNotFound *apperrors.Error
	logger         *zap.Logger
}

func NewAllocationService(repo *repository.Repository, pick AllocationPicker, parentNotFound *apperrors.Error, logger *zap.Logger) AllocationService {
	return &allocationService{repo: repo, pick: pick, parentNotFound: parentNotFound, logger: logger}
}

// NewCourseAllocationService allocates lecturers to courses.
func NewCourseAllocationService(repo *repository.Repository, logger *zap.Logger) AllocationService {
	return NewAllocationService(repo,
		func(r *repository.Repository) repository.AllocationRepository { return r.CourseLecturer },
		ErrCourseNotFound, logger.Named("course_allocation"))
}

// NewRoleAssignmentService assigns roles to users.
func NewRoleAssignmentService(repo *repository.Repository, logger *zap.Logger) AllocationService {
	return NewAllocationService(repo,
		func(r *repository.Repository) repository.AllocationRepository { return r.UserRole },
		ErrRoleNotFound, logger.Named("role_assignment"))
}

func (s *allocationService) requireParent(ctx context.Context, a repository.AllocationRepository, parentID int64) error {
	ok, err := a.ParentExists(ctx, parentID)
	if err != nil {
		return err
	}
	if !ok {
		return s.parentNotFound
	}
	return nil
}

func (s *allocationService) Allocate(ctx context.Context, parentID int64, userIDs []int64) error {
	if parentID <= 0 || len(userIDs) == 0 {
		return ErrMissingFields
	}
	ids := dedupeIDs(userIDs)

	var inserted int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		a := s.pick(tx)
		if err := s.requireParent(ctx, a, parentID); err != nil {
			return err
		}

		count, err := a.CountUsers(ctx, ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return ErrUsersNotFound
		}

		inserted, err = a.Insert(ctx, parentID, ids)
		return err
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.logger.Error("allocate failed", zap.Int64("parent_id", parentID), zap.Error(err))
		}
		return err
	}

	s.logger.Info("allocated",
		zap.Int64("parent_id", parentID),
		zap.Int("requested", len(ids)),
		zap.Int64("inserted", inserted),
	)
	return nil
}

func (s *allocationService) ClearAll(ctx context.Context, parentID int64) error {
	if parentID <= 0 {
		return ErrMissingFields
	}

	a := s.pick(s.repo)
	if err := s.requireParent(ctx, a, parentID); err != nil {
		return err
	}

	removed, err := a.DeleteAll(ctx, parentID)
	if err != nil {
		s.logger.Error("clear allocations failed", zap.Int64("parent_id", parentID), zap.Error(err))
		return err
	}
	s.logger.Info("allocations cleared", zap.Int64("parent_id", parentID), zap.Int64("removed", removed))
	return nil
}

func (s *allocationService) ClearSpecific(ctx context.Context, parentID, userID int64) error {
	if parentID <= 0 || userID <= 0 {
		return ErrMissingFields
	}

	a := s.pick(s.repo)
	if err := s.requireParent(ctx, a, parentID); err != nil {
		return err
	}

	ok, err := a.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	if _, err := a.Delete(ctx, parentID, userID); err != nil {
		s.logger.Error("clear allocation failed",
			zap.Int64("parent_id", parentID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
