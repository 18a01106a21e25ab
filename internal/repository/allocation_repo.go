package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationTable describes a user join table hanging off a parent entity.
// Names are fixed at compile time and never come from requests.
type AllocationTable struct {
	Name         string
	ParentTable  string
	ParentColumn string
}

var (
	CourseLecturers = AllocationTable{Name: "course_lecturers", ParentTable: "courses", ParentColumn: "course_id"}
	UserRoles       = AllocationTable{Name: "user_roles", ParentTable: "roles", ParentColumn: "role_id"}
)

// AllocationRepository manages (parent, user) pairs in one join table.
type AllocationRepository interface {
	ParentExists(ctx context.Context, parentID int64) (bool, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	// CountUsers counts how many of ids exist in users.
	CountUsers(ctx context.Context, ids []int64) (int64, error)
	// Insert skips pairs that already exist and returns the number inserted.
	Insert(ctx context.Context, parentID int64, userIDs []int64) (int64, error)
	DeleteAll(ctx context.Context, parentID int64) (int64, error)
	Delete(ctx context.Context, parentID, userID int64) (int64, error)
}

type allocationRepo struct {
	db    *gorm.DB
	table AllocationTable
}

func NewAllocationRepo(db *gorm.DB, table AllocationTable) AllocationRepository {
	return &allocationRepo{db: db, table: table}
}

func (r *allocationRepo) ParentExists(ctx context.Context, parentID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table(r.table.ParentTable).
		Where("id = ?", parentID).
		Count(&n).Error
	return n > 0, err
}

func (r *allocationRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Count(&n).Error
	return n > 0, err
}

func (r *allocationRepo) CountUsers(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("id IN ?", ids).
		Count(&n).Error
	return n, err
}

func (r *allocationRepo) Insert(ctx context.Context, parentID int64, userIDs []int64) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	rows := make([]map[string]interface{}, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, map[string]interface{}{
			r.table.ParentColumn: parentID,
			"user_id":            uid,
		})
	}
	res := r.db.WithContext(ctx).
		Table(r.table.Name).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *allocationRepo) DeleteAll(ctx context.Context, parentID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM "+r.table.Name+" WHERE "+r.table.ParentColumn+" = ?", parentID)
	return res.RowsAffected, res.Error
}

func (r *allocationRepo) Delete(ctx context.Context, parentID, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM "+r.table.Name+" WHERE "+r.table.ParentColumn+" = ? AND user_id = ?", parentID, userID)
	return res.RowsAffected, res.Error
}
