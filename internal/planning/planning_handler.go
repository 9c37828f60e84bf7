package planning

import (
	"net/http"
	"strconv"
	"strings"

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
	l := zap.L().Named("planning.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("planning.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetBalance returns the bucket breakdown for one employee. Employees may
// only read their own; admins may read anyone's.
func (h *Handler) GetBalance(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	actor := c.GetString(middleware.ContextEmployeeCode)
	if code != actor && !c.GetBool(middleware.ContextIsAdmin) {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "cannot view another employee's balance", nil)
		return
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "year must be a number", nil)
			return
		}
		year = parsed
	}

	balance, err := h.service.Balance(c.Request.Context(), code, year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("balance computation failed", zap.String("code", code), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, balance, nil)
}

// PreviewConflicts reports overlapping department-mates before a request is
// submitted, so the advisory warning can render in the form.
func (h *Handler) PreviewConflicts(c *gin.Context) {
	var req ConflictPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	actor := c.GetString(middleware.ContextEmployeeCode)
	if req.EmployeeCode == "" {
		req.EmployeeCode = actor
	}
	req.EmployeeCode = strings.ToUpper(req.EmployeeCode)
	if req.EmployeeCode != actor && !c.GetBool(middleware.ContextIsAdmin) {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "cannot preview conflicts for another employee", nil)
		return
	}

	conflicts, err := h.service.PreviewConflicts(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, conflicts, nil)
}
