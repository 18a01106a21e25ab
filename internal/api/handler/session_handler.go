package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// SessionHandler academic sessions. Reads are open to any authenticated
// user; writes sit behind the admin gate in the router.
type SessionHandler struct {
	sessionSvc service.SessionService
}

func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// ListSessions GET /api/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Sessions retrieved successfully", sessions)
}

// GetSession GET /api/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, err := parseID(c, "session")
	if err != nil {
		fail(c, err)
		return
	}

	session, err := h.sessionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Session retrieved successfully", session)
}

// GetCurrentSession GET /api/sessions/current
func (h *SessionHandler) GetCurrentSession(c *gin.Context) {
	session, err := h.sessionSvc.GetCurrent(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Current Session retrieved successfully", session)
}

// CreateSession POST /api/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	session, err := h.sessionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "Session created successfully", session)
}

// UpdateSession PUT /api/sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, err := parseID(c, "session")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.UpdateSessionRequest
	if err := bindStrict(c, &req); err != nil {
		fail(c, err)
		return
	}

	session, err := h.sessionSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, "Session updated successfully", session)
}

// SetCurrentSession PUT /api/sessions/set-current/:id
func (h *SessionHandler) SetCurrentSession(c *gin.Context) {
	id, err := parseID(c, "session")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.sessionSvc.SetCurrent(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, "Session set as current")
}

// DeleteSession DELETE /api/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := parseID(c, "session")
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Message(c, "Session deleted successfully")
}
