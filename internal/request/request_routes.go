package request

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.GET("", h.GetAll)
		requests.POST("",
			middleware.RateLimitByEmployee(rate.Limit(0.5), 3),
			middleware.Idempotency(rdb),
			h.Create,
		)
		requests.POST("/:id/approve", middleware.AdminOnly(), h.Approve)
		requests.POST("/:id/deny", middleware.AdminOnly(), h.Deny)
		requests.DELETE("/:id", h.Delete)
	}
}
