package middlewares

import (
	"errors"
	"net/http"

	"github.com/zenott/boilerplate-project-exercisetracker/apperrors"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the context into the service's only
// non-JSON responses: plain text with a real status code. Handlers report
// known domain failures in-band themselves; only unexpected store errors
// reach this path.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			if appErr.Kind == apperrors.Validation {
				c.String(http.StatusBadRequest, appErr.Message)
				return
			}
			status := appErr.Status
			if status == 0 {
				status = http.StatusInternalServerError
			}
			msg := appErr.Message
			if msg == "" {
				msg = "Internal Server Error"
			}
			c.String(status, msg)
			return
		}

		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

// NotFound answers requests that matched no route.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	}
}
