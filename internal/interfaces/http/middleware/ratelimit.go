package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/infrastructure/ratelimit"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const ErrMsgRateLimited = "Too many requests, please try again later"

// RateLimiter limits requests per client IP and route. A nil limiter disables limiting.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limit   int
	window  time.Duration
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		key := c.FullPath() + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limit, rl.window)
		if err != nil {
			// redis unavailable: fail open
			rl.logger.Warnw("rate limiter unavailable", "error", err, "path", c.FullPath())
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", retryAfter(rl.window))
			utils.ErrorResponse(c, http.StatusTooManyRequests, ErrMsgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

func retryAfter(window time.Duration) string {
	seconds := int(window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
