package repository

import (
	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentTypeRepository interface {
	Create(db *gorm.DB, apptType *entity.AppointmentType) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AppointmentType, error)
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.AppointmentType, error)
	Count(db *gorm.DB) (int64, error)
	Update(db *gorm.DB, apptType *entity.AppointmentType) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	// IsReferenced reports whether any slot or appointment points at the type
	IsReferenced(db *gorm.DB, id uuid.UUID) (bool, error)
}
