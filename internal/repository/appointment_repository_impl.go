package repository

import (
	"errors"

	"nutrition-booking/internal/domain/entity"
	domainRepo "nutrition-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("AppointmentType", "TimeSlot").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("AppointmentType").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("appointment_date >= ?", entity.DateOnly(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("appointment_date <= ?", entity.DateOnly(*filter.EndDate))
	}
	if filter.SlotID != nil {
		query = query.Where("time_slot_id = ?", *filter.SlotID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.Preload("AppointmentType").
		Order("appointment_date ASC, appointment_time ASC, created_at ASC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("AppointmentType").
		Where("user_id = ?", userID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountActiveBySlot(db *gorm.DB, slotID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("time_slot_id = ? AND status IN ?", slotID, entity.ActiveAppointmentStatuses).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("AppointmentType", "TimeSlot").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
