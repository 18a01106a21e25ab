package dto

// ── allocation DTOs ──
//
// Course allocation and role assignment share one handler. Each body type
// exposes its parent id through a method so the handler stays generic while
// every route keeps its own JSON keys for the allow-list.

// AllocateInput is a bulk assignment body.
type AllocateInput interface {
	Parent() int64
	Users() []int64
}

// ClearInput removes every pair of a parent.
type ClearInput interface {
	Parent() int64
}

// ClearOneInput removes one pair.
type ClearOneInput interface {
	Parent() int64
	User() int64
}

// POST /courses/allocate
type CourseAllocateRequest struct {
	CourseID int64   `json:"course_id" binding:"omitempty,gt=0"`
	UserIDs  []int64 `json:"user_ids"  binding:"omitempty,dive,gt=0"`
}

func (r *CourseAllocateRequest) Parent() int64  { return r.CourseID }
func (r *CourseAllocateRequest) Users() []int64 { return r.UserIDs }

// POST /courses/allocate/delete
type CourseClearRequest struct {
	CourseID int64 `json:"course_id" binding:"omitempty,gt=0"`
}

func (r *CourseClearRequest) Parent() int64 { return r.CourseID }

// POST /courses/allocate/delete-specific
type CourseClearOneRequest struct {
	CourseID int64 `json:"course_id" binding:"omitempty,gt=0"`
	UserID   int64 `json:"user_id"   binding:"omitempty,gt=0"`
}

func (r *CourseClearOneRequest) Parent() int64 { return r.CourseID }
func (r *CourseClearOneRequest) User() int64   { return r.UserID }

// POST /roles/assign
type RoleAssignRequest struct {
	RoleID  int64   `json:"role_id"  binding:"omitempty,gt=0"`
	UserIDs []int64 `json:"user_ids" binding:"omitempty,dive,gt=0"`
}

func (r *RoleAssignRequest) Parent() int64  { return r.RoleID }
func (r *RoleAssignRequest) Users() []int64 { return r.UserIDs }

// POST /roles/assign/delete
type RoleClearRequest struct {
	RoleID int64 `json:"role_id" binding:"omitempty,gt=0"`
}

func (r *RoleClearRequest) Parent() int64 { return r.RoleID }

// POST /roles/assign/delete-specific
type RoleClearOneRequest struct {
	RoleID int64 `json:"role_id" binding:"omitempty,gt=0"`
	UserID int64 `json:"user_id" binding:"omitempty,gt=0"`
}

func (r *RoleClearOneRequest) Parent() int64 { return r.RoleID }
func (r *RoleClearOneRequest) User() int64   { return r.UserID }
