package holiday

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", h.GetAll)
		holidays.POST("", middleware.AdminOnly(), h.Create)
		holidays.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	}
}
