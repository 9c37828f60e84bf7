package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards duplicate POSTs (double-tapped clock-in, resubmitted
// vacation form) with a short-lived redis lock per employee + Idempotency-Key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		code := c.GetString(ContextEmployeeCode)
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), code, idempKey)

		// SetNX: if the key already exists another attempt with the same key
		// is still in flight. Expiry keeps a crashed request from wedging it.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "La operación ya se está procesando",
			})
			return
		}

		c.Next()
	}
}
