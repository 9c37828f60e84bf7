package feedback

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	items := r.Group("/feedback")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", h.GetAll)
		items.POST("", h.Create)
		items.POST("/:id/toggle", middleware.AdminOnly(), h.ToggleCompleted)
		items.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	}
}
