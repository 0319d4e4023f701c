package usecase

import (
	"context"
	"errors"
	"time"

	"nutrition-booking/internal/converter"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"
	"nutrition-booking/internal/service"
	"nutrition-booking/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Reserve(ctx context.Context, req *dto.ReserveAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query *dto.AppointmentListQuery) (*dto.AppointmentListResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	RecordPayment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	UpdateAdminNotes(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAdminNotesRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	tx              repository.Transactor
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.TimeSlotRepository
	typeRepo        repository.AppointmentTypeRepository
	auditService    service.AuditService
	locker          service.SlotLocker
	notifier        service.AppointmentNotifier
	metrics         *metrics.Metrics
	opts            BookingOptions
}

func NewAppointmentUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.TimeSlotRepository,
	typeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
	locker service.SlotLocker,
	notifier service.AppointmentNotifier,
	m *metrics.Metrics,
	opts BookingOptions,
) AppointmentUsecase {
	return &appointmentUsecase{
		tx:              tx,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		typeRepo:        typeRepo,
		auditService:    auditService,
		locker:          locker,
		notifier:        notifier,
		metrics:         m,
		opts:            opts,
	}
}

// Reserve books one unit of a slot's capacity.
//
// Flow:
// 1. Resolve the booker (token user or guest contact) and the appointment type
// 2. Take the per-slot lock, bounded by the reserve timeout
// 3. In one transaction: row-lock the slot, check it is bookable, count active
//    appointments against capacity, insert the pending appointment and its audit entry
// 4. After commit, emit the reserved event
func (u *appointmentUsecase) Reserve(ctx context.Context, req *dto.ReserveAppointmentRequest) (*dto.AppointmentResponse, error) {
	started := time.Now()

	appointment, err := u.reserve(ctx, req)
	u.metrics.ObserveReservation(reservationOutcome(err), time.Since(started).Seconds())
	if err != nil {
		return nil, err
	}

	u.notifier.Dispatch(entity.NewAppointmentEvent(entity.AppointmentEventReserved, appointment, "", u.opts.now()))
	u.log.Infof("Appointment reserved: id=%s, slot=%s, date=%s, time=%s",
		appointment.ID, *appointment.TimeSlotID, appointment.AppointmentDate.Format(entity.DateFormat), appointment.AppointmentTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) reserve(ctx context.Context, req *dto.ReserveAppointmentRequest) (*entity.Appointment, error) {
	contact, err := contactFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.AppointmentTypeID == uuid.Nil {
		return nil, domain.NewValidationError("appointment_type_id", "is required")
	}

	apptType, err := u.typeRepo.FindByID(u.tx.Conn(ctx), req.AppointmentTypeID)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", req.AppointmentTypeID, err)
		return nil, err
	}
	if apptType == nil {
		return nil, domain.ErrAppointmentTypeNotFound
	}
	if !apptType.IsActive {
		return nil, domain.ErrAppointmentTypeInactive
	}

	slotID, err := u.resolveSlotID(ctx, req)
	if err != nil {
		return nil, err
	}

	lockCtx, cancel := context.WithTimeout(ctx, u.opts.ReserveTimeout)
	defer cancel()

	unlock, err := u.locker.Lock(lockCtx, slotID)
	if err != nil {
		u.log.Warnf("Failed to lock slot %s: %+v", slotID, err)
		return nil, err
	}
	defer unlock()

	var appointment *entity.Appointment
	err = u.tx.WithinTransaction(lockCtx, func(tx *gorm.DB) error {
		slot, err := u.slotRepo.FindByIDForUpdate(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to lock slot row %s: %+v", slotID, err)
			return err
		}
		if slot == nil {
			return domain.ErrSlotNotFound
		}
		if !slot.IsAvailable {
			return domain.ErrSlotBlocked
		}
		if !slot.StartsAt(u.opts.location()).After(u.opts.now()) {
			return domain.ErrSlotInPast
		}
		if !slot.Accepts(apptType.ID) {
			return domain.ErrSlotTypeMismatch
		}

		active, err := u.appointmentRepo.CountActiveBySlot(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to count appointments of slot %s: %+v", slotID, err)
			return err
		}
		if active >= int64(slot.MaxAppointments) {
			return domain.ErrSlotFull
		}

		appointment = entity.NewPendingAppointment(slot, apptType, contact, req.Notes)
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			u.log.Warnf("Failed to create appointment on slot %s: %+v", slotID, err)
			return err
		}
		return u.auditService.LogCreate(ctx, tx, contact.UserID,
			entity.AuditActionAppointmentReserve, entity.AuditEntityAppointment, appointment.ID.String(), appointment)
	})
	if err != nil {
		return nil, err
	}

	appointment.AppointmentType = apptType
	return appointment, nil
}

// resolveSlotID accepts either a slot id or the slot's (date, time) key
func (u *appointmentUsecase) resolveSlotID(ctx context.Context, req *dto.ReserveAppointmentRequest) (uuid.UUID, error) {
	if req.TimeSlotID != nil {
		return *req.TimeSlotID, nil
	}
	if req.Date == "" || req.Time == "" {
		return uuid.Nil, domain.NewValidationError("time_slot_id", "is required unless date and time are given")
	}

	date, err := parseDateField("date", req.Date)
	if err != nil {
		return uuid.Nil, err
	}
	start, err := parseClockField("time", req.Time)
	if err != nil {
		return uuid.Nil, err
	}

	slot, err := u.slotRepo.FindByDateAndStart(u.tx.Conn(ctx), date, start)
	if err != nil {
		u.log.Warnf("Failed to find slot %s %s: %+v", req.Date, req.Time, err)
		return uuid.Nil, err
	}
	if slot == nil {
		return uuid.Nil, domain.ErrSlotNotFound
	}
	return slot.ID, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.tx.Conn(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, domain.ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)
	filter := &entity.AppointmentFilter{
		SlotID: query.SlotID,
		Page:   page,
		Limit:  limit,
	}

	if query.Status != "" {
		status, err := entity.ParseAppointmentStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	var err error
	if filter.StartDate, err = parseOptionalDateField("start_date", query.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = parseOptionalDateField("end_date", query.EndDate); err != nil {
		return nil, err
	}

	appointments, total, err := u.appointmentRepo.FindAll(u.tx.Conn(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
		Page:         page,
		Limit:        limit,
	}, nil
}

// GetMyAppointments returns all appointments of the logged-in client
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	appointments, err := u.appointmentRepo.FindByUserID(u.tx.Conn(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int64(len(appointments)),
	}, nil
}

// CancelMyAppointment lets a client cancel one of their own appointments
func (u *appointmentUsecase) CancelMyAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	return u.transition(ctx, appointmentID, entity.AppointmentStatusCancelled, &userID)
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target, err := entity.ParseAppointmentStatus(req.Status)
	if err != nil {
		return nil, err
	}

	return u.transition(ctx, appointmentID, target, nil)
}

// transition applies one state machine move under a row lock. With owner set
// the appointment must belong to that user.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uuid.UUID, target entity.AppointmentStatus, owner *uuid.UUID) (*dto.AppointmentResponse, error) {
	now := u.opts.now()

	var appointment *entity.Appointment
	var previous entity.AppointmentStatus
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByIDForUpdate(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return err
		}
		if appointment == nil {
			return domain.ErrAppointmentNotFound
		}
		if owner != nil && !appointment.IsOwnedBy(*owner) {
			return domain.ErrAppointmentNotOwned
		}

		previous = appointment.Status
		if err := appointment.TransitionTo(target, now); err != nil {
			return err
		}

		// Admins may close out an appointment early; keep a trace of it
		if (target == entity.AppointmentStatusCompleted || target == entity.AppointmentStatusNoShow) &&
			appointment.StartsAt(u.opts.location()).After(now) {
			u.log.Warnf("Appointment %s marked %s before its start time %s",
				appointmentID, target, appointment.StartsAt(u.opts.location()).Format(time.RFC3339))
		}

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionAppointmentStatus, entity.AuditEntityAppointment, appointmentID.String(),
			map[string]entity.AppointmentStatus{"status": previous},
			map[string]entity.AppointmentStatus{"status": target})
	})
	if err != nil {
		return nil, err
	}

	u.metrics.ObserveTransition(string(previous), string(target))
	u.notifier.Dispatch(entity.NewAppointmentEvent(entity.AppointmentEventStatusChanged, appointment, previous, now))
	u.log.Infof("Appointment %s: %s -> %s", appointmentID, previous, target)
	return u.reload(ctx, appointment), nil
}

// RecordPayment marks the consultation fee as collected
func (u *appointmentUsecase) RecordPayment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.mutate(ctx, appointmentID, entity.AuditActionAppointmentPayment, func(a *entity.Appointment) error {
		return a.MarkPaid()
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Payment recorded: appointment=%s, amount=%s", appointmentID, appointment.PaymentAmount)
	return u.reload(ctx, appointment), nil
}

func (u *appointmentUsecase) UpdateAdminNotes(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAdminNotesRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.mutate(ctx, appointmentID, entity.AuditActionAppointmentNotes, func(a *entity.Appointment) error {
		a.AdminNotes = req.AdminNotes
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.reload(ctx, appointment), nil
}

// mutate applies a non-status change to an appointment under a row lock and audits it
func (u *appointmentUsecase) mutate(ctx context.Context, appointmentID uuid.UUID, action string, apply func(a *entity.Appointment) error) (*entity.Appointment, error) {
	var appointment *entity.Appointment
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByIDForUpdate(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return err
		}
		if appointment == nil {
			return domain.ErrAppointmentNotFound
		}

		old := *appointment
		if err := apply(appointment); err != nil {
			return err
		}

		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
			return err
		}
		return u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx),
			action, entity.AuditEntityAppointment, appointmentID.String(), old, appointment)
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment hard-deletes an appointment. The slot capacity it held is
// freed implicitly because occupancy is counted, not stored.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	var appointment *entity.Appointment
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByIDForUpdate(tx, appointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
			return err
		}
		if appointment == nil {
			return domain.ErrAppointmentNotFound
		}

		if _, err := u.appointmentRepo.Delete(tx, appointmentID); err != nil {
			u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
			return err
		}
		return u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionAppointmentDelete, entity.AuditEntityAppointment, appointmentID.String(), appointment)
	})
	if err != nil {
		return err
	}

	u.notifier.Dispatch(entity.NewAppointmentEvent(entity.AppointmentEventDeleted, appointment, appointment.Status, u.opts.now()))
	u.log.Infof("Appointment deleted: id=%s", appointmentID)
	return nil
}

// reload fetches the appointment with its type for the response, falling back
// to the in-memory copy when the read fails.
func (u *appointmentUsecase) reload(ctx context.Context, appointment *entity.Appointment) *dto.AppointmentResponse {
	full, err := u.appointmentRepo.FindByID(u.tx.Conn(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment)
	}
	return converter.AppointmentToResponse(full)
}

// contactFromRequest identifies the booker. Logged-in clients are identified
// by their token; guests must leave a name and an email.
func contactFromRequest(ctx context.Context, req *dto.ReserveAppointmentRequest) (entity.Contact, error) {
	contact := entity.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		contact.UserID = &userID
		if contact.Email == "" {
			contact.Email, _ = middleware.GetUserEmailFromContext(ctx)
		}
		return contact, nil
	}

	if contact.Name == "" {
		return contact, domain.NewValidationError("name", "is required for guest bookings")
	}
	if contact.Email == "" {
		return contact, domain.NewValidationError("email", "is required for guest bookings")
	}
	return contact, nil
}

func reservationOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeReserved
	case errors.Is(err, domain.ErrSlotFull):
		return metrics.OutcomeFull
	case errors.Is(err, domain.ErrSlotBlocked):
		return metrics.OutcomeBlocked
	case errors.Is(err, domain.ErrSlotNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSlotInPast),
		errors.Is(err, domain.ErrSlotTypeMismatch),
		errors.Is(err, domain.ErrAppointmentTypeNotFound),
		errors.Is(err, domain.ErrAppointmentTypeInactive):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
