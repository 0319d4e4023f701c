package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrSlotNotFound     = errors.New("time slot not found")
	ErrSlotBlocked      = errors.New("time slot is blocked")
	ErrSlotFull         = errors.New("time slot is fully booked")
	ErrSlotInPast       = errors.New("time slot is in the past")
	ErrSlotTypeMismatch = errors.New("time slot is reserved for another appointment type")
	ErrDuplicateSlot    = errors.New("time slot already exists for this date and start time")
	ErrSlotInUse        = errors.New("time slot has active appointments")

	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentNotOwned    = errors.New("appointment does not belong to you")
	ErrInvalidTransition      = errors.New("invalid appointment status transition")
	ErrPaymentAlreadyRecorded = errors.New("payment already recorded")

	ErrAppointmentTypeNotFound = errors.New("appointment type not found")
	ErrAppointmentTypeInUse    = errors.New("appointment type is referenced by slots or appointments")
	ErrAppointmentTypeInactive = errors.New("appointment type is not active")
)

// ValidationError describes malformed input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
