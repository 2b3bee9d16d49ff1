package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// Logger logs one line per request at a level chosen by the status class.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if query := c.Request.URL.RawQuery; query != "" {
			args = append(args, "query", query)
		}
		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if adminID, exists := c.Get(constants.ContextKeyAdminID); exists {
			args = append(args, "admin_id", adminID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
