package employeeerrors

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrCodeTaken = apperror.New(
		apperror.CodeConflict,
		"an employee with this code already exists",
		http.StatusConflict,
	)
	ErrUnknownDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"one or more department ids do not exist",
		http.StatusBadRequest,
	)
	ErrInvalidScheduleTime = apperror.New(
		apperror.CodeInvalidInput,
		"schedule times must be HH:MM",
		http.StatusBadRequest,
	)
)
