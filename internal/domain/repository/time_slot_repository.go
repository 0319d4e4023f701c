package repository

import (
	"time"

	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	// Create inserts a slot and fails with domain.ErrDuplicateSlot when the
	// (date, start_time) key is taken.
	Create(db *gorm.DB, slot *entity.TimeSlot) error
	// CreateIfAbsent inserts a slot unless its key exists; created is false for duplicates.
	CreateIfAbsent(db *gorm.DB, slot *entity.TimeSlot) (created bool, err error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error)
	// FindByIDForUpdate row-locks the slot for the rest of the transaction.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error)
	FindByDateAndStart(db *gorm.DB, date time.Time, start entity.Clock) (*entity.TimeSlot, error)
	FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error)
	// FindWithOccupancy returns slots joined with their live active-appointment counts.
	FindWithOccupancy(db *gorm.DB, filter *entity.SlotFilter) ([]entity.SlotOccupancy, error)
	UpdateAvailability(db *gorm.DB, id uuid.UUID, available bool) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
