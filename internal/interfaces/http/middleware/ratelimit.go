package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/ratelimit"
	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// RateLimit throttles a route group per client IP. When the limiter
// backend is unreachable the request passes: an unavailable Redis must
// not lock everyone out of the portal.
func RateLimit(limiter ratelimit.Limiter, cfg config.RateLimitConfig, name string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", name, c.ClientIP())
		allowed, err := limiter.Allow(key, cfg.LoginLimit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
