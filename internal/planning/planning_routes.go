package planning

import (
	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	planning := r.Group("/planning")
	planning.Use(middleware.AuthMiddleware())
	{
		planning.GET("/balances/:code", h.GetBalance)
		planning.POST("/conflicts/preview", h.PreviewConflicts)
	}
}
