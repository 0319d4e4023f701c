package usecase

import (
	"errors"
	"time"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
)

var (
	ErrUserNotInContext = errors.New("user not found in context")
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	// maxGenerationDays bounds a single bulk generation request
	maxGenerationDays = 366
)

// BookingOptions carries the scheduling settings shared by the booking usecases
type BookingOptions struct {
	// Location is the consultancy's local timezone; slot dates and times are wall-clock values in it
	Location *time.Location
	// ReserveTimeout bounds lock acquisition plus the reserve transaction
	ReserveTimeout time.Duration
	// AvailabilityMaxDays bounds the date range of availability queries
	AvailabilityMaxDays int
	// Now is the clock; time.Now when nil
	Now func() time.Time
}

func (o BookingOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o BookingOptions) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

// today returns the current calendar date in the consultancy's timezone
func (o BookingOptions) today() time.Time {
	return entity.DateOnly(o.now().In(o.location()))
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func parseDateField(field, value string) (time.Time, error) {
	date, err := entity.ParseDate(value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, err.Error())
	}
	return date, nil
}

func parseOptionalDateField(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDateField(field, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseClockField(field, value string) (entity.Clock, error) {
	clock, err := entity.ParseClock(value)
	if err != nil {
		return 0, domain.NewValidationError(field, err.Error())
	}
	return clock, nil
}
