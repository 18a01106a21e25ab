package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
)

func seedUser(t *testing.T, m *mockRepos, email string) *model.User {
	t.Helper()
	u := &model.User{Title: "Dr", FirstName: "Ada", LastName: "Obi", Email: email, PhoneNumber: "0803", Password: "x"}
	if err := m.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCourse(t *testing.T, m *mockRepos, code string) *model.Course {
	t.Helper()
	c := &model.Course{
		CourseCode: code, CourseTitle: "Circuits", CourseDescription: "d",
		CourseUnit: 3, Level: 200, Semester: "first", CourseType: "C", CourseDepartment: "Internal",
	}
	if err := m.courses.Create(context.Background(), c); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func seedRole(t *testing.T, m *mockRepos, name string) *model.Role {
	t.Helper()
	r := &model.Role{Name: name}
	if err := m.roles.Create(context.Background(), r); err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return r
}

// ── Allocate ──

func TestAllocate_Idempotent(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())
	ctx := context.Background()

	course := seedCourse(t, m, "EEE201")
	u1 := seedUser(t, m, "a@uni.edu")
	u2 := seedUser(t, m, "b@uni.edu")

	for i := 0; i < 2; i++ {
		if err := svc.Allocate(ctx, course.ID, []int64{u1.ID, u2.ID}); err != nil {
			t.Fatalf("Allocate #%d: %v", i+1, err)
		}
	}
	if len(m.courseLecturer.pairs) != 2 {
		t.Errorf("want 2 pairs, got %d", len(m.courseLecturer.pairs))
	}
}

func TestAllocate_DuplicateIDsCollapse(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())

	course := seedCourse(t, m, "EEE201")
	u := seedUser(t, m, "a@uni.edu")

	if err := svc.Allocate(context.Background(), course.ID, []int64{u.ID, u.ID, u.ID}); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(m.courseLecturer.pairs) != 1 {
		t.Errorf("want 1 pair, got %d", len(m.courseLecturer.pairs))
	}
}

func TestAllocate_UnknownUserInsertsNothing(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())

	course := seedCourse(t, m, "EEE201")
	u := seedUser(t, m, "a@uni.edu")

	err := svc.Allocate(context.Background(), course.ID, []int64{u.ID, 404})
	if !errors.Is(err, ErrUsersNotFound) {
		t.Fatalf("want ErrUsersNotFound, got %v", err)
	}
	if m.courseLecturer.insertCalls != 0 || len(m.courseLecturer.pairs) != 0 {
		t.Errorf("nothing should be inserted, got %d calls and %d pairs",
			m.courseLecturer.insertCalls, len(m.courseLecturer.pairs))
	}
}

func TestAllocate_UnknownParent(t *testing.T) {
	repo, m := newMockRepository()
	u := seedUser(t, m, "a@uni.edu")
	ctx := context.Background()

	courses := NewCourseAllocationService(repo, zap.NewNop())
	if err := courses.Allocate(ctx, 77, []int64{u.ID}); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("want ErrCourseNotFound, got %v", err)
	}

	roles := NewRoleAssignmentService(repo, zap.NewNop())
	if err := roles.Allocate(ctx, 77, []int64{u.ID}); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("want ErrRoleNotFound, got %v", err)
	}
}

func TestAllocate_MissingFields(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		parentID int64
		userIDs  []int64
	}{
		{"no parent", 0, []int64{1}},
		{"no users", 1, nil},
		{"empty users", 1, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Allocate(ctx, tt.parentID, tt.userIDs); !errors.Is(err, ErrMissingFields) {
				t.Errorf("want ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestRoleAssignment_UsesUserRoles(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewRoleAssignmentService(repo, zap.NewNop())

	role := seedRole(t, m, model.RoleLevelCoordinator)
	u := seedUser(t, m, "a@uni.edu")

	if err := svc.Allocate(context.Background(), role.ID, []int64{u.ID}); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if !m.userRole.pairs[pair{role.ID, u.ID}] {
		t.Error("role assignment not stored in user roles")
	}
	if len(m.courseLecturer.pairs) != 0 {
		t.Error("role assignment leaked into course lecturers")
	}
}

// ── Clear ──

func TestClearAll(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())
	ctx := context.Background()

	c1 := seedCourse(t, m, "EEE201")
	c2 := seedCourse(t, m, "EEE202")
	u := seedUser(t, m, "a@uni.edu")
	_ = svc.Allocate(ctx, c1.ID, []int64{u.ID})
	_ = svc.Allocate(ctx, c2.ID, []int64{u.ID})

	if err := svc.ClearAll(ctx, c1.ID); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if m.courseLecturer.pairs[pair{c1.ID, u.ID}] {
		t.Error("pair on cleared course remains")
	}
	if !m.courseLecturer.pairs[pair{c2.ID, u.ID}] {
		t.Error("pair on other course was removed")
	}

	// clearing an empty parent succeeds
	if err := svc.ClearAll(ctx, c1.ID); err != nil {
		t.Errorf("ClearAll on empty course: %v", err)
	}
	if err := svc.ClearAll(ctx, 999); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("want ErrCourseNotFound, got %v", err)
	}
}

func TestClearSpecific(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewCourseAllocationService(repo, zap.NewNop())
	ctx := context.Background()

	c := seedCourse(t, m, "EEE201")
	u1 := seedUser(t, m, "a@uni.edu")
	u2 := seedUser(t, m, "b@uni.edu")
	_ = svc.Allocate(ctx, c.ID, []int64{u1.ID, u2.ID})

	if err := svc.ClearSpecific(ctx, c.ID, u1.ID); err != nil {
		t.Fatalf("ClearSpecific: %v", err)
	}
	if m.courseLecturer.pairs[pair{c.ID, u1.ID}] {
		t.Error("pair still present")
	}
	if !m.courseLecturer.pairs[pair{c.ID, u2.ID}] {
		t.Error("other lecturer removed")
	}

	// absent pair is a no-op
	if err := svc.ClearSpecific(ctx, c.ID, u1.ID); err != nil {
		t.Errorf("ClearSpecific on absent pair: %v", err)
	}
	if err := svc.ClearSpecific(ctx, c.ID, 404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("want ErrUserNotFound, got %v", err)
	}
	if err := svc.ClearSpecific(ctx, 0, u1.ID); !errors.Is(err, ErrMissingFields) {
		t.Errorf("want ErrMissingFields, got %v", err)
	}
}
