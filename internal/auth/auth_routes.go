package auth

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
