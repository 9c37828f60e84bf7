package employee

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.AdminOnly(), h.GetAll)
		employees.GET("/:code", h.GetByCode)
		employees.POST("", middleware.AdminOnly(), h.Create)
		employees.PUT("/:code", middleware.AdminOnly(), h.Update)
		employees.DELETE("/:code", middleware.AdminOnly(), h.Delete)
	}
}
