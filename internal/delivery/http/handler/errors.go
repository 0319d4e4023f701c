package handler

import (
	"context"
	"errors"
	"net/http"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/service"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"
)

// writeError maps usecase errors onto the response envelope. Anything it does
// not recognise is reported as a 500 with the fallback message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		field := validationErr.Field
		if field == "" {
			field = "request"
		}
		response.ValidationError(w, map[string]string{field: validationErr.Message})
		return
	}

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrAppointmentTypeNotFound),
		errors.Is(err, usecase.ErrAuditLogNotFound):
		response.NotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrUserNotInContext):
		response.Unauthorized(w, "")

	case errors.Is(err, domain.ErrAppointmentNotOwned):
		response.Forbidden(w, capitalize(err.Error()))

	case errors.Is(err, domain.ErrSlotBlocked),
		errors.Is(err, domain.ErrSlotFull),
		errors.Is(err, domain.ErrDuplicateSlot),
		errors.Is(err, domain.ErrSlotInUse),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAppointmentTypeInUse),
		errors.Is(err, domain.ErrPaymentAlreadyRecorded):
		response.Conflict(w, capitalize(err.Error()))

	case errors.Is(err, domain.ErrAppointmentTypeInactive),
		errors.Is(err, domain.ErrSlotInPast),
		errors.Is(err, domain.ErrSlotTypeMismatch):
		response.UnprocessableEntity(w, capitalize(err.Error()))

	case errors.Is(err, service.ErrLockNotAcquired),
		errors.Is(err, context.DeadlineExceeded):
		response.ServiceUnavailable(w, "Slot is busy, please retry")

	default:
		response.InternalServerError(w, fallback)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
