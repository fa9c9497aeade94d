package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"method", c.Request.Method,
					"path", c.FullPath(),
					"error", appErr.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Unknown errors stay server-side; the client gets a generic message.
		logger.Log.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
