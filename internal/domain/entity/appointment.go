package entity

import (
	"fmt"
	"time"

	"nutrition-booking/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// ActiveAppointmentStatuses are the statuses that occupy slot capacity
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending: {
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusNoShow,
	},
	AppointmentStatusConfirmed: {
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
		AppointmentStatusNoShow,
	},
}

// ParseAppointmentStatus validates a raw status value
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	switch status {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled,
		AppointmentStatusCompleted, AppointmentStatusNoShow:
		return status, nil
	}
	return "", domain.NewValidationError("status", fmt.Sprintf("unknown appointment status %q", s))
}

// IsActive reports whether the status occupies slot capacity
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// IsTerminal reports whether no further transition is allowed
func (s AppointmentStatus) IsTerminal() bool {
	_, ok := appointmentTransitions[s]
	return !ok
}

func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range appointmentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// PaymentStatus represents whether the consultation fee was collected
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Appointment is a client booking against a time slot
type Appointment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	GuestName         string            `gorm:"type:varchar(100)" json:"guest_name,omitempty"`
	GuestEmail        string            `gorm:"type:varchar(255)" json:"guest_email,omitempty"`
	GuestPhone        string            `gorm:"type:varchar(30)" json:"guest_phone,omitempty"`
	AppointmentTypeID uuid.UUID         `gorm:"type:uuid;not null;index" json:"appointment_type_id"`
	TimeSlotID        *uuid.UUID        `gorm:"type:uuid;index:idx_appointments_slot_status,priority:1" json:"time_slot_id,omitempty"`
	AppointmentDate   time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime   Clock             `gorm:"type:time;not null" json:"appointment_time"`
	Duration          int               `gorm:"not null" json:"duration"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;index:idx_appointments_slot_status,priority:2" json:"status"`
	PaymentStatus     PaymentStatus     `gorm:"type:varchar(20);not null" json:"payment_status"`
	PaymentAmount     decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"payment_amount"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	AdminNotes        string            `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	ConfirmedAt       *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt       *time.Time        `json:"cancelled_at,omitempty"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
	NoShowAt          *time.Time        `json:"no_show_at,omitempty"`

	// Relationships
	AppointmentType *AppointmentType `gorm:"foreignKey:AppointmentTypeID" json:"appointment_type,omitempty"`
	TimeSlot        *TimeSlot        `gorm:"foreignKey:TimeSlotID" json:"time_slot,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewPendingAppointment books a slot for the given type, snapshotting the
// type's duration and price.
func NewPendingAppointment(slot *TimeSlot, apptType *AppointmentType, contact Contact, notes string) *Appointment {
	slotID := slot.ID
	return &Appointment{
		ID:                uuid.New(),
		UserID:            contact.UserID,
		GuestName:         contact.Name,
		GuestEmail:        contact.Email,
		GuestPhone:        contact.Phone,
		AppointmentTypeID: apptType.ID,
		TimeSlotID:        &slotID,
		AppointmentDate:   slot.SlotDate,
		AppointmentTime:   slot.StartTime,
		Duration:          apptType.Duration,
		Status:            AppointmentStatusPending,
		PaymentStatus:     PaymentStatusPending,
		PaymentAmount:     apptType.Price,
		Notes:             notes,
	}
}

// Contact returns the contact details for notifications
func (a *Appointment) Contact() Contact {
	return Contact{
		UserID: a.UserID,
		Name:   a.GuestName,
		Email:  a.GuestEmail,
		Phone:  a.GuestPhone,
	}
}

// IsOwnedBy checks whether the appointment was booked by userID
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID != nil && *a.UserID == userID
}

// StartsAt returns the absolute start instant in loc
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	return a.AppointmentTime.On(a.AppointmentDate, loc)
}

// TransitionTo moves the appointment to target and stamps the matching
// timestamp. Terminal or unreachable targets fail with ErrInvalidTransition.
func (a *Appointment) TransitionTo(target AppointmentStatus, now time.Time) error {
	if !a.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, a.Status, target)
	}

	stamp := now
	switch target {
	case AppointmentStatusConfirmed:
		a.ConfirmedAt = &stamp
	case AppointmentStatusCancelled:
		a.CancelledAt = &stamp
	case AppointmentStatusCompleted:
		a.CompletedAt = &stamp
	case AppointmentStatusNoShow:
		a.NoShowAt = &stamp
	}
	a.Status = target
	return nil
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm(now time.Time) error {
	return a.TransitionTo(AppointmentStatusConfirmed, now)
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel(now time.Time) error {
	return a.TransitionTo(AppointmentStatusCancelled, now)
}

// Complete changes appointment status to completed
func (a *Appointment) Complete(now time.Time) error {
	return a.TransitionTo(AppointmentStatusCompleted, now)
}

// MarkNoShow changes appointment status to no_show
func (a *Appointment) MarkNoShow(now time.Time) error {
	return a.TransitionTo(AppointmentStatusNoShow, now)
}

// MarkPaid records the payment for the appointment
func (a *Appointment) MarkPaid() error {
	if a.Status == AppointmentStatusCancelled {
		return fmt.Errorf("%w: cannot record payment for a cancelled appointment", domain.ErrInvalidTransition)
	}
	if a.PaymentStatus == PaymentStatusPaid {
		return domain.ErrPaymentAlreadyRecorded
	}
	a.PaymentStatus = PaymentStatusPaid
	return nil
}

// Contact identifies who booked an appointment: a registered user, a guest, or both
type Contact struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Name   string     `json:"name,omitempty"`
	Email  string     `json:"email,omitempty"`
	Phone  string     `json:"phone,omitempty"`
}
