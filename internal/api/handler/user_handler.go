package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// UserHandler user administration.
type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Users retrieved successfully", users)
}

// GetUser GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c, "user")
	if err != nil {
		fail(c, err)
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", user)
}

// CreateUser POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "User created successfully", user)
}

// UpdateUser PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c, "user")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "User updated successfully", user)
}

// DeleteUser DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c, "user")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
