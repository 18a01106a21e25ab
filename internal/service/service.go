package service

import (
	"go.uber.org/zap"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/repository"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/jwt"
)

// Service aggregates every business service.
type Service struct {
	Auth             AuthService
	User             UserService
	Role             RoleService
	Course           CourseService
	Session          SessionService
	CourseAllocation AllocationService
	RoleAssignment   AllocationService
	Export           ExportService
}

// NewService wires the services. tokens may be nil when Redis is unavailable.
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:             NewAuthService(repo, jwtMgr, tokens, logger.Named("auth")),
		User:             NewUserService(repo, logger.Named("user")),
		Role:             NewRoleService(repo, logger.Named("role")),
		Course:           NewCourseService(repo, logger.Named("course")),
		Session:          NewSessionService(repo, logger.Named("session")),
		CourseAllocation: NewCourseAllocationService(repo, logger),
		RoleAssignment:   NewRoleAssignmentService(repo, logger),
		Export:           NewExportService(repo, logger.Named("export")),
	}
}
