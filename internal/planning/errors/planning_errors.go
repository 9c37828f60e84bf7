package planningerrors

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(apperror.CodeInvalidInput, "dates must use the YYYY-MM-DD format", http.StatusBadRequest)
	ErrInvertedRange     = apperror.New(apperror.CodeInvalidInput, "end date precedes start date", http.StatusBadRequest)
	ErrEmptySelection    = apperror.New(apperror.CodeInvalidInput, "a range or at least one date is required", http.StatusBadRequest)
)
