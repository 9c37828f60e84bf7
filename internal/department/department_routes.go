package department

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", h.GetAll)
		departments.GET("/:id", h.GetByID)
		departments.POST("", middleware.AdminOnly(), h.Create)
		departments.PUT("/:id", middleware.AdminOnly(), h.Update)
		departments.DELETE("/:id", middleware.AdminOnly(), h.Delete)
	}
}
