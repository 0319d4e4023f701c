package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed which slot, type or appointment.
// ActorID is nil for guest bookings.
type AuditLog struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID    *uuid.UUID `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityName string     `gorm:"type:varchar(50);not null" json:"entity_name"`
	EntityID   string     `gorm:"type:varchar(64);not null;index" json:"entity_id"`
	Metadata   JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Audit actions
const (
	AuditActionTypeCreate = "appointment_type.create"
	AuditActionTypeUpdate = "appointment_type.update"
	AuditActionTypeDelete = "appointment_type.delete"

	AuditActionSlotCreate       = "slot.create"
	AuditActionSlotGenerate     = "slot.generate"
	AuditActionSlotAvailability = "slot.availability"
	AuditActionSlotDelete       = "slot.delete"

	AuditActionAppointmentReserve = "appointment.reserve"
	AuditActionAppointmentStatus  = "appointment.status"
	AuditActionAppointmentPayment = "appointment.payment"
	AuditActionAppointmentNotes   = "appointment.notes"
	AuditActionAppointmentDelete  = "appointment.delete"
)

// Audited entity names
const (
	AuditEntityAppointmentType = "appointment_type"
	AuditEntityTimeSlot        = "time_slot"
	AuditEntityAppointment     = "appointment"
)
