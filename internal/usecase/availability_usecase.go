package usecase

import (
	"context"
	"fmt"
	"time"

	"nutrition-booking/internal/converter"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// defaultAvailabilityDays is the window shown when no end date is given
const defaultAvailabilityDays = 30

type AvailabilityUsecase interface {
	// ListAvailable returns future, open, non-full slots for clients
	ListAvailable(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error)
	// GetOverview returns every slot in range with a capacity summary for admins
	GetOverview(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityOverviewResponse, error)
}

type availabilityUsecase struct {
	tx       repository.Transactor
	log      *logrus.Logger
	slotRepo repository.TimeSlotRepository
	opts     BookingOptions
}

func NewAvailabilityUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	opts BookingOptions,
) AvailabilityUsecase {
	return &availabilityUsecase{
		tx:       tx,
		log:      log,
		slotRepo: slotRepo,
		opts:     opts,
	}
}

func (u *availabilityUsecase) ListAvailable(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	start, end, err := u.resolveRange(query)
	if err != nil {
		return nil, err
	}
	if today := u.opts.today(); start.Before(today) {
		start = today
	}

	available := true
	slots, err := u.slotRepo.FindWithOccupancy(u.tx.Conn(ctx), &entity.SlotFilter{
		StartDate:         &start,
		EndDate:           &end,
		IsAvailable:       &available,
		AppointmentTypeID: query.AppointmentTypeID,
	})
	if err != nil {
		u.log.Warnf("Failed to find slot availability: %+v", err)
		return nil, err
	}

	now := u.opts.now()
	loc := u.opts.location()
	open := make([]entity.SlotOccupancy, 0, len(slots))
	for _, slot := range slots {
		if slot.IsFull() || !slot.StartsAt(loc).After(now) {
			continue
		}
		open = append(open, slot)
	}

	return &dto.AvailabilityResponse{
		StartDate: start.Format(entity.DateFormat),
		EndDate:   end.Format(entity.DateFormat),
		Slots:     converter.SlotOccupanciesToResponses(open),
		Total:     len(open),
	}, nil
}

func (u *availabilityUsecase) GetOverview(ctx context.Context, query *dto.AvailabilityQuery) (*dto.AvailabilityOverviewResponse, error) {
	start, end, err := u.resolveRange(query)
	if err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindWithOccupancy(u.tx.Conn(ctx), &entity.SlotFilter{
		StartDate:         &start,
		EndDate:           &end,
		AppointmentTypeID: query.AppointmentTypeID,
	})
	if err != nil {
		u.log.Warnf("Failed to find slot availability: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityOverviewResponse{
		StartDate: start.Format(entity.DateFormat),
		EndDate:   end.Format(entity.DateFormat),
		Slots:     converter.SlotOccupanciesToResponses(slots),
		Summary:   summarize(slots),
	}, nil
}

// resolveRange applies the default window and rejects inverted or oversized ranges
func (u *availabilityUsecase) resolveRange(query *dto.AvailabilityQuery) (time.Time, time.Time, error) {
	start := u.opts.today()
	if query.StartDate != "" {
		parsed, err := parseDateField("start_date", query.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	end := start.AddDate(0, 0, defaultAvailabilityDays)
	if query.EndDate != "" {
		parsed, err := parseDateField("end_date", query.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_date", "must not be before start_date")
	}
	if maxDays := u.opts.AvailabilityMaxDays; maxDays > 0 && end.After(start.AddDate(0, 0, maxDays)) {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_date", fmt.Sprintf("range must not exceed %d days", maxDays))
	}
	return start, end, nil
}

func summarize(slots []entity.SlotOccupancy) dto.AvailabilitySummary {
	var summary dto.AvailabilitySummary
	for _, slot := range slots {
		summary.Slots++
		summary.Capacity += slot.MaxAppointments
		summary.Booked += slot.CurrentAppointments
		if !slot.IsAvailable {
			summary.Blocked++
			continue
		}
		if slot.IsFull() {
			summary.Full++
		}
		summary.Remaining += slot.Remaining()
	}
	return summary
}
