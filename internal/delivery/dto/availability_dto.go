package dto

import (
	"github.com/google/uuid"
)

// Query DTOs

type AvailabilityQuery struct {
	StartDate         string
	EndDate           string
	AppointmentTypeID *uuid.UUID
}

// Response DTOs

type SlotAvailabilityResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Date                string     `json:"date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	MaxAppointments     int        `json:"max_appointments"`
	CurrentAppointments int        `json:"current_appointments"`
	Remaining           int        `json:"remaining"`
	IsAvailable         bool       `json:"is_available"`
	AppointmentTypeID   *uuid.UUID `json:"appointment_type_id,omitempty"`
}

type AvailabilityResponse struct {
	StartDate string                     `json:"start_date"`
	EndDate   string                     `json:"end_date"`
	Slots     []SlotAvailabilityResponse `json:"slots"`
	Total     int                        `json:"total"`
}

type AvailabilitySummary struct {
	Slots     int `json:"slots"`
	Blocked   int `json:"blocked"`
	Full      int `json:"full"`
	Capacity  int `json:"capacity"`
	Booked    int `json:"booked"`
	Remaining int `json:"remaining"`
}

type AvailabilityOverviewResponse struct {
	StartDate string                     `json:"start_date"`
	EndDate   string                     `json:"end_date"`
	Slots     []SlotAvailabilityResponse `json:"slots"`
	Summary   AvailabilitySummary        `json:"summary"`
}
