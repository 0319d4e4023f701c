package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentEventType names what happened to an appointment
type AppointmentEventType string

const (
	AppointmentEventReserved      AppointmentEventType = "appointment.reserved"
	AppointmentEventStatusChanged AppointmentEventType = "appointment.status_changed"
	AppointmentEventDeleted       AppointmentEventType = "appointment.deleted"
)

// AppointmentEvent is handed to the notification dispatcher after a committed change
type AppointmentEvent struct {
	Type           AppointmentEventType `json:"type"`
	AppointmentID  uuid.UUID            `json:"appointment_id"`
	Status         AppointmentStatus    `json:"status"`
	PreviousStatus AppointmentStatus    `json:"previous_status,omitempty"`
	Contact        Contact              `json:"contact"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	OccurredAt     time.Time            `json:"occurred_at"`
}

// NewAppointmentEvent snapshots an appointment into an event
func NewAppointmentEvent(eventType AppointmentEventType, a *Appointment, previous AppointmentStatus, now time.Time) AppointmentEvent {
	return AppointmentEvent{
		Type:           eventType,
		AppointmentID:  a.ID,
		Status:         a.Status,
		PreviousStatus: previous,
		Contact:        a.Contact(),
		Date:           a.AppointmentDate.Format(DateFormat),
		Time:           a.AppointmentTime.String(),
		OccurredAt:     now,
	}
}
