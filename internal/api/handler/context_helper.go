package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/internal/service"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// MustGetIdentity extracts the caller placed in the request context by JWTAuth.
// On false a 401 has already been written and the caller should return.
func MustGetIdentity(c *gin.Context) (*service.Identity, bool) {
	id, ok := service.IdentityFrom(c.Request.Context())
	if !ok {
		response.Unauthorized(c, "No Auth Token Provided")
		return nil, false
	}
	return id, true
}
