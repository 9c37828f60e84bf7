package timeclockerrors

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
)

var (
	ErrRecordNotFound    = apperror.New(apperror.CodeNotFound, "no clock record for that day", http.StatusNotFound)
	ErrAlreadyStarted    = apperror.New(apperror.CodeInvalidState, "already clocked in today", http.StatusConflict)
	ErrNotStarted        = apperror.New(apperror.CodeInvalidState, "not clocked in yet", http.StatusConflict)
	ErrAlreadyEnded      = apperror.New(apperror.CodeInvalidState, "already clocked out today", http.StatusConflict)
	ErrNotEnded          = apperror.New(apperror.CodeInvalidState, "cannot reopen a day that is still open", http.StatusConflict)
	ErrBreakWhileClosed  = apperror.New(apperror.CodeInvalidState, "breaks require an open clock record", http.StatusConflict)
	ErrBreakAlreadyTaken = apperror.New(apperror.CodeInvalidState, "that break was already taken today", http.StatusConflict)
	ErrInvalidBreakKind  = apperror.New(apperror.CodeInvalidInput, "break kind must be breakfast or lunch", http.StatusBadRequest)
	ErrLocationRequired  = apperror.New(apperror.CodeInvalidInput, "location is required to clock in or out", http.StatusBadRequest)
	ErrOutsideRadius     = apperror.New(apperror.CodeForbidden, "too far from the office to clock in or out", http.StatusForbidden)
	ErrSettingsNotFound  = apperror.New(apperror.CodeNotFound, "time-clock settings are not configured", http.StatusNotFound)
)
