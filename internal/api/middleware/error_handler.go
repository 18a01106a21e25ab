package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/database"
	apperrors "github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/errors"
	"github.com/iam-benjamen/EEE-RMS-BACKEND/pkg/response"
)

// ErrorHandler turns the last error recorded with c.Error into a response
// when the handler has not written one.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		writeError(c, c.Errors.Last().Err, logger)
	}
}

func writeError(c *gin.Context, err error, logger *zap.Logger) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	if appErr, ok := apperrors.As(err); ok {
		if appErr.Kind == apperrors.KindInternal {
			logger.Error("internal error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		if len(appErr.Details) > 0 {
			response.ValidationError(c, appErr.Message, appErr.Details)
			return
		}
		response.Error(c, appErr.Kind.HTTPStatus(), appErr.Message)
		return
	}

	switch {
	case database.IsUniqueViolation(err):
		response.Error(c, http.StatusConflict, "Resource already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(c, "Resource not found")
	default:
		logger.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c)
	}
}
