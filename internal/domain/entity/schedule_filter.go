package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotFilter is a domain-level filter for querying time slots.
// Used by repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	StartDate         *time.Time
	EndDate           *time.Time
	IsAvailable       *bool
	AppointmentTypeID *uuid.UUID
}

// AppointmentFilter narrows appointment listings for the admin back-office
type AppointmentFilter struct {
	Status    *AppointmentStatus
	StartDate *time.Time
	EndDate   *time.Time
	SlotID    *uuid.UUID
	UserID    *uuid.UUID
	Page      int
	Limit     int
}

// Offset returns the row offset for the requested page
func (f *AppointmentFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	Action   string
	EntityID string
	Page     int
	Limit    int
}

func (f *AuditLogFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
