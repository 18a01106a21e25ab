package handler

import "github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth             *AuthHandler
	User             *UserHandler
	Course           *CourseHandler
	Role             *RoleHandler
	Session          *SessionHandler
	CourseAllocation *AllocationHandler
	RoleAssignment   *AllocationHandler
	Export           *ExportHandler
	Health           *HealthHandler
}

// NewHandler wires handlers to services. cache may be nil.
func NewHandler(svc *service.Service, db, cache Pinger) *Handler {
	return &Handler{
		Auth:             NewAuthHandler(svc.Auth),
		User:             NewUserHandler(svc.User),
		Course:           NewCourseHandler(svc.Course),
		Role:             NewRoleHandler(svc.Role),
		Session:          NewSessionHandler(svc.Session),
		CourseAllocation: NewCourseAllocationHandler(svc.CourseAllocation),
		RoleAssignment:   NewRoleAssignmentHandler(svc.RoleAssignment),
		Export:           NewExportHandler(svc.Export),
		Health:           NewHealthHandler(db, cache),
	}
}
