package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/dto"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// Pinger is anything that can report whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger // nil without Redis
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check GET /health. A down database is 503; Redis only degrades.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := dto.HealthResponse{Database: "up", Redis: "disabled"}
	if err := h.db.Ping(ctx); err != nil {
		status.Database = "down"
	}
	if h.cache != nil {
		status.Redis = "up"
		if err := h.cache.Ping(ctx); err != nil {
			status.Redis = "down"
		}
	}

	if status.Database != "up" {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Status:  false,
			Message: "Database unavailable",
			Data:    status,
		})
		return
	}
	response.OK(c, "OK", status)
}
