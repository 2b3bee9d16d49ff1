package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scamguard-vn/scamguard/internal/shared/constants"
)

const maxRequestIDLength = 64

// RequestID propagates a client supplied X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)

		c.Next()
	}
}
