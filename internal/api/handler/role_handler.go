package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

type RoleHandler struct {
	roleSvc service.RoleService
}

func NewRoleHandler(roleSvc service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

// ListRoles GET /api/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Roles retrieved successfully", roles)
}

// GetRole GET /api/roles/:id
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, err := parseID(c, "role")
	if err != nil {
		fail(c, err)
		return
	}

	role, err := h.roleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Role retrieved successfully", role)
}

// CreateRole POST /api/roles
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	role, err := h.roleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Role Created successfully", role)
}

// UpdateRole PUT /api/roles/:id
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := parseID(c, "role")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.RoleRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	role, err := h.roleSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Role Updated successfully", role)
}

// DeleteRole DELETE /api/roles/:id
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := parseID(c, "role")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.roleSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, "Role deleted successfully")
}
