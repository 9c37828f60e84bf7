package auth

import (
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	token, profile, err := h.service.Login(c.Request.Context(), req.Code)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("login failed", zap.String("code", req.Code), zap.String("error_code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: token,
		Profile:     profile,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	code := c.GetString(middleware.ContextEmployeeCode)

	profile, err := h.service.GetMe(c.Request.Context(), code)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, profile, nil)
}
