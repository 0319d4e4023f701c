package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// ReserveAppointmentRequest addresses the slot either by id or by date and time
type ReserveAppointmentRequest struct {
	TimeSlotID        *uuid.UUID `json:"time_slot_id" validate:"required_without=Date"`
	Date              string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time              string     `json:"time" validate:"omitempty,clock"`
	AppointmentTypeID uuid.UUID  `json:"appointment_type_id" validate:"required"`
	Name              string     `json:"name" validate:"max=100"`
	Email             string     `json:"email" validate:"omitempty,email,max=255"`
	Phone             string     `json:"phone" validate:"max=30"`
	Notes             string     `json:"notes" validate:"max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed no_show"`
}

type UpdateAdminNotesRequest struct {
	AdminNotes string `json:"admin_notes" validate:"max=5000"`
}

// Query DTOs

type AppointmentListQuery struct {
	Status    string
	StartDate string
	EndDate   string
	SlotID    *uuid.UUID
	Page      int
	Limit     int
}

// Response DTOs

type AppointmentResponse struct {
	ID                uuid.UUID                `json:"id"`
	UserID            *uuid.UUID               `json:"user_id,omitempty"`
	GuestName         string                   `json:"guest_name,omitempty"`
	GuestEmail        string                   `json:"guest_email,omitempty"`
	GuestPhone        string                   `json:"guest_phone,omitempty"`
	AppointmentTypeID uuid.UUID                `json:"appointment_type_id"`
	TimeSlotID        *uuid.UUID               `json:"time_slot_id,omitempty"`
	Date              string                   `json:"date"`
	Time              string                   `json:"time"`
	Duration          int                      `json:"duration"`
	Status            string                   `json:"status"`
	PaymentStatus     string                   `json:"payment_status"`
	PaymentAmount     decimal.Decimal          `json:"payment_amount"`
	Notes             string                   `json:"notes,omitempty"`
	AdminNotes        string                   `json:"admin_notes,omitempty"`
	AppointmentType   *AppointmentTypeResponse `json:"appointment_type,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
	ConfirmedAt       *time.Time               `json:"confirmed_at,omitempty"`
	CancelledAt       *time.Time               `json:"cancelled_at,omitempty"`
	CompletedAt       *time.Time               `json:"completed_at,omitempty"`
	NoShowAt          *time.Time               `json:"no_show_at,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page,omitempty"`
	Limit        int                   `json:"limit,omitempty"`
}
