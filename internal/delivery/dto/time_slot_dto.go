package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type GenerateSlotsRequest struct {
	StartDate              string     `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate                string     `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime              string     `json:"start_time" validate:"required,clock"`
	EndTime                string     `json:"end_time" validate:"required,clock"`
	SlotDuration           int        `json:"slot_duration" validate:"required,gt=0"`
	BreakDuration          int        `json:"break_duration" validate:"gte=0"`
	LunchStart             string     `json:"lunch_start" validate:"omitempty,clock"`
	LunchDuration          int        `json:"lunch_duration" validate:"gte=0"`
	WorkingDays            []int      `json:"working_days" validate:"dive,gte=0,lte=6"`
	MaxAppointmentsPerSlot int        `json:"max_appointments_per_slot" validate:"required,gte=1"`
	AppointmentTypeID      *uuid.UUID `json:"appointment_type_id"`
}

type CreateSlotRequest struct {
	Date              string     `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string     `json:"start_time" validate:"required,clock"`
	EndTime           string     `json:"end_time" validate:"required,clock"`
	MaxAppointments   int        `json:"max_appointments" validate:"required,gte=1"`
	IsAvailable       *bool      `json:"is_available"`
	AppointmentTypeID *uuid.UUID `json:"appointment_type_id"`
}

type SetSlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// Query DTOs

type SlotListQuery struct {
	StartDate         string
	EndDate           string
	IsAvailable       *bool
	AppointmentTypeID *uuid.UUID
}

// Response DTOs

type TimeSlotResponse struct {
	ID                uuid.UUID  `json:"id"`
	Date              string     `json:"date"`
	StartTime         string     `json:"start_time"`
	EndTime           string     `json:"end_time"`
	MaxAppointments   int        `json:"max_appointments"`
	IsAvailable       bool       `json:"is_available"`
	AppointmentTypeID *uuid.UUID `json:"appointment_type_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type TimeSlotListResponse struct {
	Slots []TimeSlotResponse `json:"slots"`
	Total int                `json:"total"`
}

type SlotKey struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

type GenerateSlotsResponse struct {
	Created    int                `json:"created"`
	Duplicates int                `json:"duplicates"`
	Slots      []TimeSlotResponse `json:"slots"`
	Skipped    []SlotKey          `json:"skipped"`
}
