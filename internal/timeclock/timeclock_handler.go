package timeclock

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
	l := zap.L().Named("timeclock.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeclock.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) punch(c *gin.Context, fn func(code string, req PunchRequest) (RecordResponse, error)) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	code := c.GetString(middleware.ContextEmployeeCode)
	rec, err := fn(code, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	h.punch(c, func(code string, req PunchRequest) (RecordResponse, error) {
		return h.service.ClockIn(c.Request.Context(), code, req)
	})
}

func (h *Handler) ClockOut(c *gin.Context) {
	h.punch(c, func(code string, req PunchRequest) (RecordResponse, error) {
		return h.service.ClockOut(c.Request.Context(), code, req)
	})
}

func (h *Handler) Reopen(c *gin.Context) {
	code := c.GetString(middleware.ContextEmployeeCode)

	rec, err := h.service.Reopen(c.Request.Context(), code)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) ToggleBreak(c *gin.Context) {
	var req ToggleBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	code := c.GetString(middleware.ContextEmployeeCode)
	rec, err := h.service.ToggleBreak(c.Request.Context(), code, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, rec, nil)
}

// List returns the caller's own records, or everyone's when an admin passes
// ?all=true. Window defaults to the last month.
func (h *Handler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	var (
		records []RecordResponse
		err     error
	)
	if c.Query("all") == "true" && c.GetBool(middleware.ContextIsAdmin) {
		records, err = h.service.ListAll(c.Request.Context(), from, to)
	} else {
		code := c.GetString(middleware.ContextEmployeeCode)
		records, err = h.service.List(c.Request.Context(), code, from, to)
	}
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, records, nil)
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, settings, nil)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("settings update failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, settings, nil)
}
