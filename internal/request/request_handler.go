package request

import (
	"context"
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/middleware"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, logger: l}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		Code:    c.GetString(middleware.ContextEmployeeCode),
		Name:    c.GetString(middleware.ContextEmployeeName),
		IsAdmin: c.GetBool(middleware.ContextIsAdmin),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	actor := actorFrom(c)
	result, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("request rejected",
			zap.String("employee_code", actor.Code),
			zap.String("error_code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, result, nil)
}

// GetAll lists every request for admins, only the caller's own otherwise.
func (h *Handler) GetAll(c *gin.Context) {
	actor := actorFrom(c)

	var (
		requests []RequestResponse
		err      error
	)
	if actor.IsAdmin {
		requests, err = h.service.GetAll(c.Request.Context())
	} else {
		requests, err = h.service.GetByEmployee(c.Request.Context(), actor.Code)
	}
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, requests, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Deny(c *gin.Context) {
	h.decide(c, h.service.Deny)
}

func (h *Handler) decide(c *gin.Context, fn func(ctx context.Context, id string, actor Actor) (RequestResponse, error)) {
	id := c.Param("id")
	actor := actorFrom(c)

	result, err := fn(c.Request.Context(), id, actor)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("decision failed",
			zap.String("request_id", id),
			zap.String("decided_by", actor.Code),
			zap.String("error_code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	actor := actorFrom(c)

	if err := h.service.Delete(c.Request.Context(), id, actor); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
