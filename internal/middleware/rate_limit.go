package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimit enforces a fixed-window per-IP request limit backed by redis.
// When redis is unavailable the request is allowed; throttling is an
// abuse-control layer, not a correctness one.
func RateLimit(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		ctx := context.Background()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			zap.L().Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, utils.NewErrorResponse(http.StatusTooManyRequests, "Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
