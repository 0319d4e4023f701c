package repository

import (
	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error)
	// CountActiveBySlot counts pending and confirmed appointments on a slot
	CountActiveBySlot(db *gorm.DB, slotID uuid.UUID) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
