package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
)

// UserRepository reads and writes users. Reads never select the password
// hash except GetByEmail.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Roles", "Courses").Create(user).Error
}

// withRelations preloads role and course summaries.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Roles", func(db *gorm.DB) *gorm.DB {
			return db.Select("roles.id", "roles.name").Order("roles.id")
		}).
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Select("courses.id", "courses.course_code", "courses.course_title").Order("courses.id")
		})
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := withRelations(r.db.WithContext(ctx)).
		Select(model.UserColumns).
		Where("users.id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the full row, password hash included, for login.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles", func(db *gorm.DB) *gorm.DB {
			return db.Select("roles.id", "roles.name")
		}).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := withRelations(r.db.WithContext(ctx)).
		Select(model.UserColumns).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *userRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return res.RowsAffected, res.Error
}
