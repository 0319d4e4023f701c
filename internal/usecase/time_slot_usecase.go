package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nutrition-booking/internal/converter"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"
	"nutrition-booking/internal/domain/schedule"
	"nutrition-booking/internal/service"
	"nutrition-booking/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TimeSlotUsecase interface {
	GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error)
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.TimeSlotResponse, error)
	GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error)
	ListSlots(ctx context.Context, query *dto.SlotListQuery) (*dto.TimeSlotListResponse, error)
	SetAvailability(ctx context.Context, slotID uuid.UUID, available bool) (*dto.TimeSlotResponse, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
}

type timeSlotUsecase struct {
	tx              repository.Transactor
	log             *logrus.Logger
	slotRepo        repository.TimeSlotRepository
	appointmentRepo repository.AppointmentRepository
	typeRepo        repository.AppointmentTypeRepository
	auditService    service.AuditService
	locker          service.SlotLocker
	metrics         *metrics.Metrics
	opts            BookingOptions
}

func NewTimeSlotUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	appointmentRepo repository.AppointmentRepository,
	typeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
	locker service.SlotLocker,
	m *metrics.Metrics,
	opts BookingOptions,
) TimeSlotUsecase {
	return &timeSlotUsecase{
		tx:              tx,
		log:             log,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		typeRepo:        typeRepo,
		auditService:    auditService,
		locker:          locker,
		metrics:         m,
		opts:            opts,
	}
}

// GenerateSlots expands a weekly template and stores every slot whose
// (date, start_time) is free. Slots that already exist are reported back as
// skipped, so re-running an overlapping template is harmless.
func (u *timeSlotUsecase) GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error) {
	tmpl, err := templateFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := u.ensureTypeExists(ctx, tmpl.AppointmentTypeID); err != nil {
		return nil, err
	}

	slots, err := schedule.Generate(tmpl)
	if err != nil {
		return nil, err
	}

	result := &dto.GenerateSlotsResponse{
		Slots:   []dto.TimeSlotResponse{},
		Skipped: []dto.SlotKey{},
	}
	if len(slots) == 0 {
		return result, nil
	}

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		for i := range slots {
			slot := &slots[i]
			created, err := u.slotRepo.CreateIfAbsent(tx, slot)
			if err != nil {
				u.log.Warnf("Failed to create slot %s %s: %+v", slot.SlotDate.Format(entity.DateFormat), slot.StartTime, err)
				return err
			}
			if created {
				result.Slots = append(result.Slots, *converter.TimeSlotToResponse(slot))
			} else {
				result.Skipped = append(result.Skipped, converter.SlotKeyOf(slot))
			}
		}
		result.Created = len(result.Slots)
		result.Duplicates = len(result.Skipped)

		return u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionSlotGenerate, entity.AuditEntityTimeSlot,
			fmt.Sprintf("%s..%s", req.StartDate, req.EndDate),
			map[string]interface{}{
				"template":   req,
				"created":    result.Created,
				"duplicates": result.Duplicates,
			})
	})
	if err != nil {
		return nil, err
	}

	u.metrics.ObserveGenerated(result.Created, result.Duplicates)
	u.log.Infof("Slots generated: range=%s..%s, created=%d, duplicates=%d", req.StartDate, req.EndDate, result.Created, result.Duplicates)
	return result, nil
}

func (u *timeSlotUsecase) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.TimeSlotResponse, error) {
	date, err := parseDateField("date", req.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseClockField("start_time", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClockField("end_time", req.EndTime)
	if err != nil {
		return nil, err
	}
	if end <= start {
		return nil, domain.NewValidationError("end_time", "must be after start_time")
	}
	if req.MaxAppointments < 1 {
		return nil, domain.NewValidationError("max_appointments", "must be at least 1")
	}
	if err := u.ensureTypeExists(ctx, req.AppointmentTypeID); err != nil {
		return nil, err
	}

	slot := &entity.TimeSlot{
		SlotDate:          entity.DateOnly(date),
		StartTime:         start,
		EndTime:           end,
		MaxAppointments:   req.MaxAppointments,
		IsAvailable:       req.IsAvailable == nil || *req.IsAvailable,
		AppointmentTypeID: req.AppointmentTypeID,
	}

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.slotRepo.Create(tx, slot); err != nil {
			if !errors.Is(err, domain.ErrDuplicateSlot) {
				u.log.Warnf("Failed to create slot: %+v", err)
			}
			return err
		}
		return u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionSlotCreate, entity.AuditEntityTimeSlot, slot.ID.String(), slot)
	})
	if err != nil {
		return nil, err
	}

	return converter.TimeSlotToResponse(slot), nil
}

func (u *timeSlotUsecase) GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.tx.Conn(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, domain.ErrSlotNotFound
	}

	return converter.TimeSlotToResponse(slot), nil
}

func (u *timeSlotUsecase) ListSlots(ctx context.Context, query *dto.SlotListQuery) (*dto.TimeSlotListResponse, error) {
	filter := &entity.SlotFilter{
		IsAvailable:       query.IsAvailable,
		AppointmentTypeID: query.AppointmentTypeID,
	}
	var err error
	if filter.StartDate, err = parseOptionalDateField("start_date", query.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = parseOptionalDateField("end_date", query.EndDate); err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindAll(u.tx.Conn(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		Slots: converter.TimeSlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// SetAvailability blocks or unblocks a slot. Blocking leaves existing
// appointments untouched; it only stops new reservations.
func (u *timeSlotUsecase) SetAvailability(ctx context.Context, slotID uuid.UUID, available bool) (*dto.TimeSlotResponse, error) {
	var slot *entity.TimeSlot
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		slot, err = u.slotRepo.FindByIDForUpdate(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
			return err
		}
		if slot == nil {
			return domain.ErrSlotNotFound
		}

		previous := slot.IsAvailable
		if _, err := u.slotRepo.UpdateAvailability(tx, slotID, available); err != nil {
			u.log.Warnf("Failed to update availability of slot %s: %+v", slotID, err)
			return err
		}
		slot.IsAvailable = available

		return u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionSlotAvailability, entity.AuditEntityTimeSlot, slotID.String(),
			map[string]bool{"is_available": previous},
			map[string]bool{"is_available": available})
	})
	if err != nil {
		return nil, err
	}

	return converter.TimeSlotToResponse(slot), nil
}

// DeleteSlot removes a slot that no pending or confirmed appointment occupies.
// It holds the same slot lock as a reservation, so the two cannot interleave.
func (u *timeSlotUsecase) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	lockCtx, cancel := context.WithTimeout(ctx, u.opts.ReserveTimeout)
	defer cancel()

	unlock, err := u.locker.Lock(lockCtx, slotID)
	if err != nil {
		u.log.Warnf("Failed to lock slot %s for delete: %+v", slotID, err)
		return err
	}
	defer unlock()

	err = u.tx.WithinTransaction(lockCtx, func(tx *gorm.DB) error {
		slot, err := u.slotRepo.FindByIDForUpdate(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
			return err
		}
		if slot == nil {
			return domain.ErrSlotNotFound
		}

		active, err := u.appointmentRepo.CountActiveBySlot(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to count appointments of slot %s: %+v", slotID, err)
			return err
		}
		if active > 0 {
			return domain.ErrSlotInUse
		}

		if _, err := u.slotRepo.Delete(tx, slotID); err != nil {
			u.log.Warnf("Failed to delete slot %s: %+v", slotID, err)
			return err
		}
		return u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionSlotDelete, entity.AuditEntityTimeSlot, slotID.String(), slot)
	})
	if err != nil {
		return err
	}

	u.log.Infof("Slot deleted: id=%s", slotID)
	return nil
}

func (u *timeSlotUsecase) ensureTypeExists(ctx context.Context, typeID *uuid.UUID) error {
	if typeID == nil {
		return nil
	}
	apptType, err := u.typeRepo.FindByID(u.tx.Conn(ctx), *typeID)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", *typeID, err)
		return err
	}
	if apptType == nil {
		return domain.ErrAppointmentTypeNotFound
	}
	return nil
}

// templateFromRequest parses the raw request into a generation template
func templateFromRequest(req *dto.GenerateSlotsRequest) (schedule.Template, error) {
	var tmpl schedule.Template
	var err error

	if tmpl.StartDate, err = parseDateField("start_date", req.StartDate); err != nil {
		return tmpl, err
	}
	if tmpl.EndDate, err = parseDateField("end_date", req.EndDate); err != nil {
		return tmpl, err
	}
	if days := int(tmpl.EndDate.Sub(tmpl.StartDate).Hours() / 24); days >= maxGenerationDays {
		return tmpl, domain.NewValidationError("end_date", fmt.Sprintf("range must not exceed %d days", maxGenerationDays))
	}
	if tmpl.StartTime, err = parseClockField("start_time", req.StartTime); err != nil {
		return tmpl, err
	}
	if tmpl.EndTime, err = parseClockField("end_time", req.EndTime); err != nil {
		return tmpl, err
	}
	if req.LunchStart != "" {
		if tmpl.LunchStart, err = parseClockField("lunch_start", req.LunchStart); err != nil {
			return tmpl, err
		}
	} else if req.LunchDuration > 0 {
		return tmpl, domain.NewValidationError("lunch_start", "is required when lunch_duration is set")
	}

	tmpl.SlotDuration = req.SlotDuration
	tmpl.BreakDuration = req.BreakDuration
	tmpl.LunchDuration = req.LunchDuration
	tmpl.MaxAppointmentsPerSlot = req.MaxAppointmentsPerSlot
	tmpl.AppointmentTypeID = req.AppointmentTypeID
	tmpl.WorkingDays = make([]time.Weekday, len(req.WorkingDays))
	for i, day := range req.WorkingDays {
		tmpl.WorkingDays[i] = time.Weekday(day)
	}

	return tmpl, tmpl.Validate()
}
