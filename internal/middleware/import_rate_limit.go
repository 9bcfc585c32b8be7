package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/wantosing/backend/internal/config"
)

// ImportRateLimit limits session imports per client within a day.
// Imports parse attacker-controlled JSON and create new records, so
// they get a tighter budget than the global IP limiter.
func ImportRateLimit(redisClient *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		// Key on the device when a token is present, otherwise the IP
		subject, ok := GetDeviceID(c)
		if !ok {
			subject = c.ClientIP()
		}

		// Resets daily at midnight for predictable behavior
		today := time.Now().Format("2006-01-02")
		key := fmt.Sprintf("import_limit:%s:%s", subject, today)

		// Check current count
		count, err := redisClient.Get(ctx, key).Int()
		if err == redis.Nil {
			// First import today, expire at midnight
			now := time.Now()
			midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
			ttl := midnight.Sub(now)
			if err := redisClient.Set(ctx, key, 1, ttl).Err(); err != nil {
				// Redis error, don't block the import
				c.Next()
				return
			}
		} else if err != nil {
			// Redis error, don't block the import
			c.Next()
			return
		} else if count >= cfg.ImportMaxPerDay {
			ttl, _ := redisClient.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":               "import_rate_limit_exceeded",
				"message":             "Too many imports today. Please try again tomorrow.",
				"retry_after_hours":   int(ttl.Hours()),
				"imports_today":       count,
				"max_imports_per_day": cfg.ImportMaxPerDay,
			})
			c.Abort()
			return
		} else {
			redisClient.Incr(ctx, key)
		}

		c.Next()
	}
}
