package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationData carries per-field messages for a rejected payload.
type ValidationData struct {
	Errors []string `json:"errors"`
}

// OK 200 with payload.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// Created 201 with the new resource.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// Message 200 without payload.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: message,
	})
}

// Error writes a failure envelope and aborts the chain.
func Error(c *gin.Context, httpStatus int, message string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  false,
		Message: message,
	})
}

// ValidationError 400 with the list of field messages.
func ValidationError(c *gin.Context, message string, details []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  false,
		Message: message,
		Data:    ValidationData{Errors: details},
	})
}

// ── shortcuts ──

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 with the generic message.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "An unexpected error occurred")
}
