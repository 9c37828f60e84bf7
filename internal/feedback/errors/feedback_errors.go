package feedbackerrors

import (
	"net/http"

	"github.com/alex-morcg/horarios-vacaciones/internal/shared/apperror"
)

var ErrItemNotFound = apperror.New(apperror.CodeNotFound, "feedback item not found", http.StatusNotFound)
