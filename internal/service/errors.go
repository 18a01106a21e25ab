package service

import (
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
)

// Business errors. Callers match them with errors.Is; the error handler
// middleware turns them into responses through their Kind.
var (
	ErrMissingFields = apperrors.BadRequest("Missing required fields")
	ErrForeignField  = apperrors.BadRequest("foreign field detected")

	ErrUserNotFound  = apperrors.NotFound("User not found")
	ErrUserExists    = apperrors.Conflict("User with this email already exists")
	ErrUsersNotFound = apperrors.NotFound("One or more users not found")

	ErrCourseNotFound = apperrors.NotFound("Course not found")
	ErrCourseExists   = apperrors.Conflict("Course already exists")

	ErrRoleNotFound = apperrors.NotFound("Role not found")
	ErrRoleExists   = apperrors.Conflict("Role already exists")

	ErrSessionNotFound      = apperrors.NotFound("Session not found")
	ErrSessionExists        = apperrors.Conflict("Session already exists")
	ErrDeleteCurrentSession = apperrors.Forbidden("Cannot delete current session")

	ErrCredentialsRequired = apperrors.BadRequest("Email and password are required")
	ErrInvalidCredentials  = apperrors.Unauthorized("Invalid credentials")
	ErrInvalidToken        = apperrors.Unauthorized("Invalid Token")
)
