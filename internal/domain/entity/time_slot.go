package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlot is a bookable interval on a calendar date with a fixed capacity.
// Occupancy is never stored here; it is counted from active appointments.
type TimeSlot struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SlotDate          time.Time  `gorm:"type:date;not null;uniqueIndex:idx_time_slots_date_start,priority:1" json:"slot_date"`
	StartTime         Clock      `gorm:"type:time;not null;uniqueIndex:idx_time_slots_date_start,priority:2" json:"start_time"`
	EndTime           Clock      `gorm:"type:time;not null" json:"end_time"`
	MaxAppointments   int        `gorm:"not null" json:"max_appointments"`
	IsAvailable       bool       `gorm:"not null" json:"is_available"`
	AppointmentTypeID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_type_id,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AppointmentType *AppointmentType `gorm:"foreignKey:AppointmentTypeID" json:"appointment_type,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

func (s *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Duration returns the slot length in minutes
func (s *TimeSlot) Duration() int {
	return int(s.EndTime - s.StartTime)
}

// StartsAt returns the absolute start instant in loc
func (s *TimeSlot) StartsAt(loc *time.Location) time.Time {
	return s.StartTime.On(s.SlotDate, loc)
}

// Accepts reports whether an appointment of the given type may book this slot
func (s *TimeSlot) Accepts(typeID uuid.UUID) bool {
	return s.AppointmentTypeID == nil || *s.AppointmentTypeID == typeID
}

// SlotOccupancy is a slot joined with its live active-appointment count
type SlotOccupancy struct {
	TimeSlot
	CurrentAppointments int
}

// Remaining returns free capacity, never negative
func (o *SlotOccupancy) Remaining() int {
	remaining := o.MaxAppointments - o.CurrentAppointments
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull reports whether no capacity is left
func (o *SlotOccupancy) IsFull() bool {
	return o.Remaining() == 0
}
