package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// AllocationMessages are the success messages of one allocation family.
type AllocationMessages struct {
	Allocated  string
	Cleared    string
	ClearedOne string
}

// AllocationHandler serves the allocate / clear / clear-one triple for any
// join table. The body factories decide the JSON keys each route accepts.
type AllocationHandler struct {
	svc         service.AllocationService
	newAllocate func() dto.AllocateInput
	newClear    func() dto.ClearInput
	newClearOne func() dto.ClearOneInput
	msg         AllocationMessages
}

// NewCourseAllocationHandler binds /courses/allocate*.
func NewCourseAllocationHandler(svc service.AllocationService) *AllocationHandler {
	return &AllocationHandler{
		svc:         svc,
		newAllocate: func() dto.AllocateInput { return &dto.CourseAllocateRequest{} },
		newClear:    func() dto.ClearInput { return &dto.CourseClearRequest{} },
		newClearOne: func() dto.ClearOneInput { return &dto.CourseClearOneRequest{} },
		msg: AllocationMessages{
			Allocated:  "Course allocated successfully",
			Cleared:    "Course allocations cleared successfully",
			ClearedOne: "Course allocation cleared successfully",
		},
	}
}

// NewRoleAssignmentHandler binds /roles/assign*.
func NewRoleAssignmentHandler(svc service.AllocationService) *AllocationHandler {
	return &AllocationHandler{
		svc:         svc,
		newAllocate: func() dto.AllocateInput { return &dto.RoleAssignRequest{} },
		newClear:    func() dto.ClearInput { return &dto.RoleClearRequest{} },
		newClearOne: func() dto.ClearOneInput { return &dto.RoleClearOneRequest{} },
		msg: AllocationMessages{
			Allocated:  "Role Assigned successfully",
			Cleared:    "All Role Assignment cleared!",
			ClearedOne: "Role Assignment cleared!",
		},
	}
}

// Allocate POST .../allocate, .../assign
func (h *AllocationHandler) Allocate(c *gin.Context) {
	req := h.newAllocate()
	if err := bindStrict(c, req); err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.Allocate(c.Request.Context(), req.Parent(), req.Users()); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, h.msg.Allocated)
}

// ClearAll POST .../delete
func (h *AllocationHandler) ClearAll(c *gin.Context) {
	req := h.newClear()
	if err := bindStrict(c, req); err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.ClearAll(c.Request.Context(), req.Parent()); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, h.msg.Cleared)
}

// ClearSpecific POST .../delete-specific
func (h *AllocationHandler) ClearSpecific(c *gin.Context) {
	req := h.newClearOne()
	if err := bindStrict(c, req); err != nil {
		fail(c, err)
		return
	}

	if err := h.svc.ClearSpecific(c.Request.Context(), req.Parent(), req.User()); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, h.msg.ClearedOne)
}
