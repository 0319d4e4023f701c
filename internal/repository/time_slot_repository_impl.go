package repository

import (
	"errors"
	"fmt"
	"time"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	domainRepo "nutrition-booking/internal/domain/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) Create(db *gorm.DB, slot *entity.TimeSlot) error {
	if err := db.Omit("AppointmentType").Create(slot).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlot
		}
		return err
	}
	return nil
}

func (r *timeSlotRepository) CreateIfAbsent(db *gorm.DB, slot *entity.TimeSlot) (bool, error) {
	result := db.Omit("AppointmentType").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_date"}, {Name: "start_time"}},
			DoNothing: true,
		}).
		Create(slot)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *timeSlotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.first(db.Where("id = ?", id))
}

func (r *timeSlotRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.first(db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

func (r *timeSlotRepository) FindByDateAndStart(db *gorm.DB, date time.Time, start entity.Clock) (*entity.TimeSlot, error) {
	return r.first(db.Where("slot_date = ? AND start_time = ?", entity.DateOnly(date), start))
}

func (r *timeSlotRepository) first(query *gorm.DB) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := query.First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	var slots []entity.TimeSlot
	query := db.Model(&entity.TimeSlot{})

	if filter != nil {
		if filter.StartDate != nil {
			query = query.Where("slot_date >= ?", entity.DateOnly(*filter.StartDate))
		}
		if filter.EndDate != nil {
			query = query.Where("slot_date <= ?", entity.DateOnly(*filter.EndDate))
		}
		if filter.IsAvailable != nil {
			query = query.Where("is_available = ?", *filter.IsAvailable)
		}
		if filter.AppointmentTypeID != nil {
			query = query.Where("appointment_type_id IS NULL OR appointment_type_id = ?", *filter.AppointmentTypeID)
		}
	}

	err := query.Order("slot_date ASC, start_time ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// occupancyRow is the flat scan target of the occupancy join
type occupancyRow struct {
	ID                  uuid.UUID
	SlotDate            time.Time
	StartTime           entity.Clock
	EndTime             entity.Clock
	MaxAppointments     int
	IsAvailable         bool
	AppointmentTypeID   *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CurrentAppointments int
}

func (r *timeSlotRepository) FindWithOccupancy(db *gorm.DB, filter *entity.SlotFilter) ([]entity.SlotOccupancy, error) {
	query, args, err := buildOccupancyQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build occupancy query: %w", err)
	}

	var rows []occupancyRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]entity.SlotOccupancy, len(rows))
	for i, row := range rows {
		result[i] = entity.SlotOccupancy{
			TimeSlot: entity.TimeSlot{
				ID:                row.ID,
				SlotDate:          row.SlotDate,
				StartTime:         row.StartTime,
				EndTime:           row.EndTime,
				MaxAppointments:   row.MaxAppointments,
				IsAvailable:       row.IsAvailable,
				AppointmentTypeID: row.AppointmentTypeID,
				CreatedAt:         row.CreatedAt,
				UpdatedAt:         row.UpdatedAt,
			},
			CurrentAppointments: row.CurrentAppointments,
		}
	}
	return result, nil
}

// buildOccupancyQuery counts active appointments per slot in one pass. It keeps
// squirrel's '?' placeholders so gorm binds them for the active dialect.
func buildOccupancyQuery(filter *entity.SlotFilter) (string, []interface{}, error) {
	active := make([]interface{}, len(entity.ActiveAppointmentStatuses))
	for i, status := range entity.ActiveAppointmentStatuses {
		active[i] = string(status)
	}

	builder := sq.Select(
		"ts.id",
		"ts.slot_date",
		"ts.start_time",
		"ts.end_time",
		"ts.max_appointments",
		"ts.is_available",
		"ts.appointment_type_id",
		"ts.created_at",
		"ts.updated_at",
		"COUNT(a.id) AS current_appointments",
	).
		From("time_slots ts").
		LeftJoin("appointments a ON a.time_slot_id = ts.id AND a.status IN ("+sq.Placeholders(len(active))+")", active...).
		GroupBy("ts.id").
		OrderBy("ts.slot_date ASC", "ts.start_time ASC")

	if filter != nil {
		if filter.StartDate != nil {
			builder = builder.Where(sq.GtOrEq{"ts.slot_date": entity.DateOnly(*filter.StartDate)})
		}
		if filter.EndDate != nil {
			builder = builder.Where(sq.LtOrEq{"ts.slot_date": entity.DateOnly(*filter.EndDate)})
		}
		if filter.IsAvailable != nil {
			builder = builder.Where(sq.Eq{"ts.is_available": *filter.IsAvailable})
		}
		if filter.AppointmentTypeID != nil {
			builder = builder.Where(sq.Or{
				sq.Eq{"ts.appointment_type_id": nil},
				sq.Eq{"ts.appointment_type_id": filter.AppointmentTypeID.String()},
			})
		}
	}

	return builder.ToSql()
}

func (r *timeSlotRepository) UpdateAvailability(db *gorm.DB, id uuid.UUID, available bool) (int64, error) {
	result := db.Model(&entity.TimeSlot{}).
		Where("id = ?", id).
		Update("is_available", available)
	return result.RowsAffected, result.Error
}

func (r *timeSlotRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TimeSlot{})
	return result.RowsAffected, result.Error
}
