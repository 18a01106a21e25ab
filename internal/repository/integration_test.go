//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=eee_rms_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "get sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate test database: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func uniq(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func createUser(t *testing.T, repo *repository.Repository) *model.User {
	t.Helper()
	u := &model.User{
		Title:       "Dr",
		FirstName:   "Ada",
		LastName:    "Obi",
		Email:       uniq("ada") + "@uni.edu",
		PhoneNumber: "08030000000",
		Password:    "$2a$10$placeholder",
	}
	if err := repo.User.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { testDB.Delete(&model.User{}, u.ID) })
	return u
}

func createCourse(t *testing.T, repo *repository.Repository) *model.Course {
	t.Helper()
	c := &model.Course{
		CourseCode:        fmt.Sprintf("E%d", time.Now().UnixNano()%1e15),
		CourseTitle:       "Circuit Theory",
		CourseDescription: "Networks and theorems",
		CourseUnit:        3,
		Level:             200,
		Semester:          "first",
		CourseType:        "C",
		CourseDepartment:  "Internal",
	}
	if err := repo.Course.Create(context.Background(), c); err != nil {
		t.Fatalf("create course: %v", err)
	}
	t.Cleanup(func() { testDB.Delete(&model.Course{}, c.ID) })
	return c
}

func createSession(t *testing.T, repo *repository.Repository, current bool) *model.Session {
	t.Helper()
	s := &model.Session{Date: uniq("S"), Current: current}
	if err := repo.Session.Create(context.Background(), s); err != nil {
		t.Fatalf("create session: %v", err)
	}
	t.Cleanup(func() { testDB.Delete(&model.Session{}, s.ID) })
	return s
}

func currentSessionIDs(t *testing.T) []int64 {
	t.Helper()
	var ids []int64
	if err := testDB.Model(&model.Session{}).Where("current = ?", true).Pluck("id", &ids).Error; err != nil {
		t.Fatalf("query current sessions: %v", err)
	}
	return ids
}

// ═══════════════════════════════════════════════════════════
// Test: Transaction
// ═══════════════════════════════════════════════════════════

func TestTransaction_RollbackOnError(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	date := uniq("rollback")
	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Session.Create(ctx, &model.Session{Date: date}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	var n int64
	testDB.Model(&model.Session{}).Where("date = ?", date).Count(&n)
	if n != 0 {
		testDB.Where("date = ?", date).Delete(&model.Session{})
		t.Fatal("row created inside a rolled back transaction was persisted")
	}
}

func TestTransaction_Commit(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	s := &model.Session{Date: uniq("commit")}
	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		return tx.Session.Create(ctx, s)
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	defer testDB.Delete(&model.Session{}, s.ID)

	if _, err := repo.Session.GetByID(ctx, s.ID); err != nil {
		t.Fatalf("committed session not found: %v", err)
	}
}

func TestCreateAdmin_FailureLeavesNothing(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	roleName := uniq("admin")
	email := uniq("boot") + "@uni.edu"
	_, err := service.CreateAdmin(ctx, repo, &dto.CreateUserRequest{
		Title: "Mr", FirstName: "Sys", LastName: "Admin", Email: email, PhoneNumber: "0800",
	}, roleName, zap.NewNop())
	if !errors.Is(err, service.ErrMissingFields) {
		t.Fatalf("want ErrMissingFields, got %v", err)
	}

	if _, err := repo.Role.GetByName(ctx, roleName); !errors.Is(err, gorm.ErrRecordNotFound) {
		testDB.Where("name = ?", roleName).Delete(&model.Role{})
		t.Fatalf("role created by the failed run was persisted (err=%v)", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Session currency
// ═══════════════════════════════════════════════════════════

func TestSession_ClearAndMarkCurrent(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	testDB.Model(&model.Session{}).Where("current = ?", true).Update("current", false)
	a := createSession(t, repo, true)
	b := createSession(t, repo, false)

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Session.GetForUpdate(ctx, b.ID); err != nil {
			return err
		}
		if err := tx.Session.ClearCurrent(ctx); err != nil {
			return err
		}
		_, err := tx.Session.MarkCurrent(ctx, b.ID)
		return err
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}

	ids := currentSessionIDs(t)
	if len(ids) != 1 || ids[0] != b.ID {
		t.Fatalf("want only %d current, got %v (previous %d)", b.ID, ids, a.ID)
	}
}

func TestSession_GetForUpdate_NotFound(t *testing.T) {
	repo := repository.NewRepository(testDB)

	_, err := repo.Session.GetForUpdate(context.Background(), 1<<40)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestSession_DuplicateDate(t *testing.T) {
	repo := repository.NewRepository(testDB)
	s := createSession(t, repo, false)

	err := repo.Session.Create(context.Background(), &model.Session{Date: s.Date})
	if !database.IsUniqueViolation(err) {
		t.Fatalf("want unique violation, got %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Allocation
// ═══════════════════════════════════════════════════════════

func TestAllocation_InsertIsIdempotent(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	course := createCourse(t, repo)
	u1 := createUser(t, repo)
	u2 := createUser(t, repo)

	n, err := repo.CourseLecturer.Insert(ctx, course.ID, []int64{u1.ID, u2.ID})
	if err != nil || n != 2 {
		t.Fatalf("first insert: n=%d err=%v", n, err)
	}
	n, err = repo.CourseLecturer.Insert(ctx, course.ID, []int64{u1.ID, u2.ID})
	if err != nil || n != 0 {
		t.Fatalf("second insert: n=%d err=%v", n, err)
	}

	var rows int64
	testDB.Table("course_lecturers").Where("course_id = ?", course.ID).Count(&rows)
	if rows != 2 {
		t.Fatalf("want 2 pairs, got %d", rows)
	}

	got, err := repo.Course.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Lecturers) != 2 {
		t.Fatalf("want 2 lecturers, got %d", len(got.Lecturers))
	}
	for _, l := range got.Lecturers {
		if l.Password != "" {
			t.Fatal("lecturer password hash must not be selected")
		}
	}
}

func TestAllocation_CountAndDelete(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	course := createCourse(t, repo)
	u1 := createUser(t, repo)

	count, err := repo.CourseLecturer.CountUsers(ctx, []int64{u1.ID, 1 << 40})
	if err != nil || count != 1 {
		t.Fatalf("CountUsers: count=%d err=%v", count, err)
	}

	if _, err := repo.CourseLecturer.Insert(ctx, course.ID, []int64{u1.ID}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if n, err := repo.CourseLecturer.Delete(ctx, course.ID, u1.ID); err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}
	if n, err := repo.CourseLecturer.DeleteAll(ctx, course.ID); err != nil || n != 0 {
		t.Fatalf("DeleteAll on empty: n=%d err=%v", n, err)
	}
}

func TestAllocation_CascadeOnUserDelete(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	role, err := repo.Role.GetByName(ctx, model.RoleLevelCoordinator)
	if err != nil {
		t.Fatalf("seeded role missing: %v", err)
	}
	u := createUser(t, repo)

	if _, err := repo.UserRole.Insert(ctx, role.ID, []int64{u.ID}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := repo.User.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete user: %v", err)
	}

	var rows int64
	testDB.Table("user_roles").Where("user_id = ?", u.ID).Count(&rows)
	if rows != 0 {
		t.Fatalf("want assignments cascaded, got %d", rows)
	}
}

func TestUser_GetByIDExcludesPassword(t *testing.T) {
	repo := repository.NewRepository(testDB)
	u := createUser(t, repo)

	got, err := repo.User.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Password != "" {
		t.Fatal("password hash must not be selected")
	}
	if got.Email != u.Email {
		t.Fatalf("want %s, got %s", u.Email, got.Email)
	}
}
