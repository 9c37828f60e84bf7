package requesterrors

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
)

var (
	ErrRequestNotFound     = apperror.New(apperror.CodeNotFound, "request not found", http.StatusNotFound)
	ErrInvalidRequestType  = apperror.New(apperror.CodeInvalidInput, "type must be vacation or other", http.StatusBadRequest)
	ErrOverlapsOwnRequest  = apperror.New(apperror.CodeConflict, "the selected dates overlap one of your active requests", http.StatusConflict)
	ErrAlreadyDecided      = apperror.New(apperror.CodeInvalidState, "request has already been decided", http.StatusConflict)
	ErrNotRequestOwner     = apperror.New(apperror.CodeForbidden, "only the owner or an admin can delete a request", http.StatusForbidden)
	ErrOnBehalfForbidden   = apperror.New(apperror.CodeForbidden, "only an admin can create a request for another employee", http.StatusForbidden)
	ErrUnknownEmployee     = apperror.New(apperror.CodeNotFound, "employee not found", http.StatusNotFound)
	ErrDecidedNotDeletable = apperror.New(apperror.CodeForbidden, "decided requests can only be deleted by an admin", http.StatusForbidden)
)
