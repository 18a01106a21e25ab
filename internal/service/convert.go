package service

import (
	"strings"
	"time"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/model"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// blank reports whether any value is empty after trimming.
func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// dedupeIDs keeps the first occurrence of each id.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toUserResponse(u *model.User) *dto.UserResponse {
	roles := make([]dto.RoleSummary, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, dto.RoleSummary{ID: r.ID, Name: r.Name})
	}
	courses := make([]dto.CourseSummary, 0, len(u.Courses))
	for _, c := range u.Courses {
		courses = append(courses, dto.CourseSummary{ID: c.ID, CourseCode: c.CourseCode, CourseTitle: c.CourseTitle})
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Title:       u.Title,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Roles:       roles,
		Courses:     courses,
		CreatedAt:   formatTime(u.CreatedAt),
		UpdatedAt:   formatTime(u.UpdatedAt),
	}
}

func toProfileResponse(u *model.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:          u.ID,
		Title:       u.Title,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Roles:       u.RoleNames(),
	}
}

func toCourseResponse(c *model.Course) *dto.CourseResponse {
	lecturers := make([]dto.LecturerSummary, 0, len(c.Lecturers))
	for _, l := range c.Lecturers {
		lecturers = append(lecturers, dto.LecturerSummary{
			ID:          l.ID,
			Title:       l.Title,
			FirstName:   l.FirstName,
			LastName:    l.LastName,
			PhoneNumber: l.PhoneNumber,
			Email:       l.Email,
		})
	}
	return &dto.CourseResponse{
		ID:                c.ID,
		CourseCode:        c.CourseCode,
		CourseTitle:       c.CourseTitle,
		CourseDescription: c.CourseDescription,
		CourseUnit:        c.CourseUnit,
		Level:             c.Level,
		Semester:          c.Semester,
		CourseType:        c.CourseType,
		CourseDepartment:  c.CourseDepartment,
		Lecturers:         lecturers,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func toRoleResponse(r *model.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func toSessionResponse(s *model.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:        s.ID,
		Date:      s.Date,
		Current:   s.Current,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}
