package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	CreateBatch(ctx context.Context, courses []model.Course) error
	// ExistingCodes returns which of codes are already taken.
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit("Lecturers").Create(course).Error
}

func (r *courseRepo) CreateBatch(ctx context.Context, courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Lecturers").CreateInBatches(&courses, 100).Error
}

func (r *courseRepo) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	var existing []string
	if len(codes) == 0 {
		return existing, nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_code IN ?", codes).
		Pluck("course_code", &existing).Error
	return existing, err
}

func withLecturers(db *gorm.DB) *gorm.DB {
	return db.Preload("Lecturers", func(db *gorm.DB) *gorm.DB {
		return db.Select(model.UserColumns).Order("users.id")
	})
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	err := withLecturers(r.db.WithContext(ctx)).
		Where("courses.id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := withLecturers(r.db.WithContext(ctx)).
		Order("courses.level, courses.course_code").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete cascades to course_lecturers.
func (r *courseRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Course{}, id)
	return res.RowsAffected, res.Error
}
