package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates every data-access component around one *gorm.DB.
type Repository struct {
	User           UserRepository
	Role           RoleRepository
	Course         CourseRepository
	Session        SessionRepository
	CourseLecturer AllocationRepository
	UserRole       AllocationRepository

	db *gorm.DB
}

// NewRepository binds all repositories to db, which may be a pool or a transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		Role:           NewRoleRepo(db),
		Course:         NewCourseRepo(db),
		Session:        NewSessionRepo(db),
		CourseLecturer: NewAllocationRepo(db, CourseLecturers),
		UserRole:       NewAllocationRepo(db, UserRoles),
		db:             db,
	}
}

// Transaction runs fn with repositories bound to a single transaction.
// A returned error or a panic rolls everything back; the connection goes
// back to the pool on every path.
//
// A Repository assembled by hand (tests) has no db and runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("repository has no database")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
