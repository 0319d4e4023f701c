package repository

import (
	"errors"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	domainRepo "nutrition-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentTypeRepository struct{}

func NewAppointmentTypeRepository() domainRepo.AppointmentTypeRepository {
	return &appointmentTypeRepository{}
}

func (r *appointmentTypeRepository) Create(db *gorm.DB, apptType *entity.AppointmentType) error {
	return db.Create(apptType).Error
}

func (r *appointmentTypeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AppointmentType, error) {
	var apptType entity.AppointmentType
	err := db.Where("id = ?", id).First(&apptType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &apptType, nil
}

func (r *appointmentTypeRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.AppointmentType, error) {
	var types []entity.AppointmentType
	query := db
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("duration ASC, created_at ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *appointmentTypeRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.AppointmentType{}).Count(&count).Error
	return count, err
}

func (r *appointmentTypeRepository) Update(db *gorm.DB, apptType *entity.AppointmentType) error {
	return db.Save(apptType).Error
}

func (r *appointmentTypeRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.AppointmentType{})
	if result.Error != nil {
		// FK RESTRICT catches references created after IsReferenced ran
		if isForeignKeyViolation(result.Error) {
			return 0, domain.ErrAppointmentTypeInUse
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *appointmentTypeRepository) IsReferenced(db *gorm.DB, id uuid.UUID) (bool, error) {
	var referenced bool
	err := db.Raw(`
		SELECT EXISTS (SELECT 1 FROM appointments WHERE appointment_type_id = ?)
		    OR EXISTS (SELECT 1 FROM time_slots WHERE appointment_type_id = ?)
	`, id, id).Scan(&referenced).Error
	return referenced, err
}
