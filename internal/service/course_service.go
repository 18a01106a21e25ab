package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id int64, req *dto.CourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id int64) error
	ParseImportFile(reader io.Reader) ([]CourseImportRow, error)
	Import(ctx context.Context, rows []CourseImportRow) (*dto.ImportResult, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// courseIncomplete reports a zero value in any of the eight course fields.
func courseIncomplete(req *dto.CourseRequest) bool {
	return blank(req.CourseCode, req.CourseTitle, req.CourseDescription, req.Semester, req.CourseType, req.CourseDepartment) ||
		req.CourseUnit == 0 || req.Level == 0
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, nil
}

func (s *courseService) GetByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("get course failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toCourseResponse(course), nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	if courseIncomplete(req) {
		return nil, ErrMissingFields
	}

	course := &model.Course{
		CourseCode:        strings.TrimSpace(req.CourseCode),
		CourseTitle:       strings.TrimSpace(req.CourseTitle),
		CourseDescription: strings.TrimSpace(req.CourseDescription),
		CourseUnit:        req.CourseUnit,
		Level:             req.Level,
		Semester:          req.Semester,
		CourseType:        req.CourseType,
		CourseDepartment:  req.CourseDepartment,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCourseExists
		}
		s.logger.Error("create course failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("course created", zap.Int64("id", course.ID), zap.String("code", course.CourseCode))
	return toCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, id int64, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	if courseIncomplete(req) {
		return nil, ErrMissingFields
	}

	rows, err := s.repo.Course.Update(ctx, id, map[string]interface{}{
		"course_code":        strings.TrimSpace(req.CourseCode),
		"course_title":       strings.TrimSpace(req.CourseTitle),
		"course_description": strings.TrimSpace(req.CourseDescription),
		"course_unit":        req.CourseUnit,
		"level":              req.Level,
		"semester":           req.Semester,
		"course_type":        req.CourseType,
		"course_department":  req.CourseDepartment,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCourseExists
		}
		s.logger.Error("update course failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCourseNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *courseService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Course.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete course failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrCourseNotFound
	}
	return nil
}
