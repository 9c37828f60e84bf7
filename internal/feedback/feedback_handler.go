package feedback

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	item, err := h.service.Create(
		c.Request.Context(),
		c.GetString(middleware.ContextEmployeeCode),
		c.GetString(middleware.ContextEmployeeName),
		req,
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) ToggleCompleted(c *gin.Context) {
	item, err := h.service.ToggleCompleted(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.ContextEmployeeCode),
		c.GetString(middleware.ContextEmployeeName),
	)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
