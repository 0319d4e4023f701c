// Package schedule expands a recurring weekly template into concrete time slots.
package schedule

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Template holds the bulk-creation parameters. Durations are in minutes and
// weekdays use time.Weekday numbering (Sunday = 0).
type Template struct {
	StartDate              time.Time
	EndDate                time.Time
	StartTime              entity.Clock
	EndTime                entity.Clock
	SlotDuration           int
	BreakDuration          int
	LunchStart             entity.Clock
	LunchDuration          int
	WorkingDays            []time.Weekday
	MaxAppointmentsPerSlot int
	AppointmentTypeID      *uuid.UUID
}

// Validate rejects malformed templates before any generation happens.
// An inverted date range or empty working days is not an error: it simply
// produces no slots.
func (t Template) Validate() error {
	switch {
	case !t.StartTime.Valid():
		return domain.NewValidationError("start_time", "must be within the day")
	case !t.EndTime.Valid():
		return domain.NewValidationError("end_time", "must be within the day")
	case t.EndTime < t.StartTime:
		return domain.NewValidationError("end_time", "must not be before start_time")
	case t.SlotDuration <= 0:
		return domain.NewValidationError("slot_duration", "must be greater than zero")
	case t.BreakDuration < 0:
		return domain.NewValidationError("break_duration", "must not be negative")
	case t.LunchDuration < 0:
		return domain.NewValidationError("lunch_duration", "must not be negative")
	case t.LunchDuration > 0 && !t.LunchStart.Valid():
		return domain.NewValidationError("lunch_start", "must be within the day")
	case t.MaxAppointmentsPerSlot < 1:
		return domain.NewValidationError("max_appointments_per_slot", "must be at least 1")
	}
	for _, day := range t.WorkingDays {
		if day < time.Sunday || day > time.Saturday {
			return domain.NewValidationError("working_days", fmt.Sprintf("weekday %d is outside 0-6", day))
		}
	}
	return nil
}

// Generate validates the template and collects every slot it produces.
func Generate(t Template) ([]entity.TimeSlot, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return slices.Collect(Slots(t)), nil
}

// Slots lazily yields the slots of an already validated template in date and
// time order.
func Slots(t Template) iter.Seq[entity.TimeSlot] {
	return func(yield func(entity.TimeSlot) bool) {
		if t.SlotDuration <= 0 {
			return
		}
		first := entity.DateOnly(t.StartDate)
		last := entity.DateOnly(t.EndDate)
		for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
			if !slices.Contains(t.WorkingDays, date.Weekday()) {
				continue
			}
			for start := range dailyStarts(t) {
				slot := entity.TimeSlot{
					SlotDate:          date,
					StartTime:         start,
					EndTime:           start.Add(t.SlotDuration),
					MaxAppointments:   t.MaxAppointmentsPerSlot,
					IsAvailable:       true,
					AppointmentTypeID: t.AppointmentTypeID,
				}
				if !yield(slot) {
					return
				}
			}
		}
	}
}

// dailyStarts walks the opening hours of one day. A candidate touching the
// lunch window moves the cursor to the end of lunch without emitting.
func dailyStarts(t Template) iter.Seq[entity.Clock] {
	lunchEnd := t.LunchStart.Add(t.LunchDuration)
	overlapsLunch := func(start, end entity.Clock) bool {
		return t.LunchDuration > 0 && start < lunchEnd && end > t.LunchStart
	}

	return func(yield func(entity.Clock) bool) {
		for cursor := t.StartTime; cursor.Add(t.SlotDuration) <= t.EndTime; {
			end := cursor.Add(t.SlotDuration)
			if overlapsLunch(cursor, end) {
				cursor = lunchEnd
				continue
			}
			if !yield(cursor) {
				return
			}
			cursor = end.Add(t.BreakDuration)
		}
	}
}
