package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// AuthHandler serves login, logout and the caller's profile.
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	response.Message(c, "Logout successful")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	profile, err := h.authSvc.Me(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", profile)
}
