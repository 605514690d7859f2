package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit applies a fixed window per client IP across every route it wraps.
// The window and budget mirror the legacy surface: 100 requests per 15
// minutes unless configured otherwise.
func RateLimit(max int64, window time.Duration) gin.HandlerFunc {
	instance := limiter.New(memorystore.NewStore(), limiter.Rate{
		Period: window,
		Limit:  max,
	})

	return func(c *gin.Context) {
		lctx, err := instance.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests from this IP, please try again later.",
				},
			})
			return
		}
		c.Next()
	}
}
