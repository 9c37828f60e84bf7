package timeclock

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	clock := r.Group("/timeclock")
	clock.Use(middleware.AuthMiddleware())
	{
		clock.POST("/in", middleware.RateLimitByEmployee(rate.Limit(1), 3), h.ClockIn)
		clock.POST("/out", middleware.RateLimitByEmployee(rate.Limit(1), 3), h.ClockOut)
		clock.POST("/reopen", h.Reopen)
		clock.POST("/breaks/toggle", h.ToggleBreak)
		clock.GET("/records", h.List)
		clock.GET("/settings", h.GetSettings)
		clock.PUT("/settings", middleware.AdminOnly(), h.UpdateSettings)
	}
}
