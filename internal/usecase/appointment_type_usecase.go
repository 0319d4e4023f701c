package usecase

import (
	"context"

	"nutrition-booking/internal/converter"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"
	"nutrition-booking/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentTypeUsecase interface {
	ListAppointmentTypes(ctx context.Context, activeOnly bool) (*dto.AppointmentTypeListResponse, error)
	GetAppointmentType(ctx context.Context, id uuid.UUID, activeOnly bool) (*dto.AppointmentTypeResponse, error)
	CreateAppointmentType(ctx context.Context, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	UpdateAppointmentType(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	DeleteAppointmentType(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context) (int, error)
}

type appointmentTypeUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	typeRepo     repository.AppointmentTypeRepository
	auditService service.AuditService
}

func NewAppointmentTypeUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	typeRepo repository.AppointmentTypeRepository,
	auditService service.AuditService,
) AppointmentTypeUsecase {
	return &appointmentTypeUsecase{
		tx:           tx,
		log:          log,
		typeRepo:     typeRepo,
		auditService: auditService,
	}
}

func (u *appointmentTypeUsecase) ListAppointmentTypes(ctx context.Context, activeOnly bool) (*dto.AppointmentTypeListResponse, error) {
	types, err := u.typeRepo.FindAll(u.tx.Conn(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find appointment types: %+v", err)
		return nil, err
	}

	return &dto.AppointmentTypeListResponse{
		AppointmentTypes: converter.AppointmentTypesToResponses(types),
		Total:            len(types),
	}, nil
}

// GetAppointmentType returns a type by id. With activeOnly an inactive type is
// reported as not found, which is what public callers see.
func (u *appointmentTypeUsecase) GetAppointmentType(ctx context.Context, id uuid.UUID, activeOnly bool) (*dto.AppointmentTypeResponse, error) {
	apptType, err := u.typeRepo.FindByID(u.tx.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", id, err)
		return nil, err
	}
	if apptType == nil || (activeOnly && !apptType.IsActive) {
		return nil, domain.ErrAppointmentTypeNotFound
	}

	return converter.AppointmentTypeToResponse(apptType), nil
}

func (u *appointmentTypeUsecase) CreateAppointmentType(ctx context.Context, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	apptType := &entity.AppointmentType{
		Name:        entity.LocalizedText(req.Name),
		Description: entity.LocalizedText(req.Description),
		Duration:    req.Duration,
		Price:       req.Price,
		Color:       req.Color,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.typeRepo.Create(tx, apptType); err != nil {
			u.log.Warnf("Failed to create appointment type: %+v", err)
			return err
		}
		return u.auditService.LogCreate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionTypeCreate, entity.AuditEntityAppointmentType, apptType.ID.String(), apptType)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment type created: id=%s, name=%s", apptType.ID, apptType.Name.Get(entity.DefaultLocale))
	return converter.AppointmentTypeToResponse(apptType), nil
}

func (u *appointmentTypeUsecase) UpdateAppointmentType(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	var updated *entity.AppointmentType
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		apptType, err := u.typeRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment type %s: %+v", id, err)
			return err
		}
		if apptType == nil {
			return domain.ErrAppointmentTypeNotFound
		}

		old := *apptType
		apptType.Name = entity.LocalizedText(req.Name)
		apptType.Description = entity.LocalizedText(req.Description)
		apptType.Duration = req.Duration
		apptType.Price = req.Price
		apptType.Color = req.Color
		if req.IsActive != nil {
			apptType.IsActive = *req.IsActive
		}

		if err := u.typeRepo.Update(tx, apptType); err != nil {
			u.log.Warnf("Failed to update appointment type %s: %+v", id, err)
			return err
		}
		updated = apptType
		return u.auditService.LogUpdate(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionTypeUpdate, entity.AuditEntityAppointmentType, id.String(), old, apptType)
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentTypeToResponse(updated), nil
}

// DeleteAppointmentType removes a type that no slot or appointment refers to.
// Referenced types can only be deactivated.
func (u *appointmentTypeUsecase) DeleteAppointmentType(ctx context.Context, id uuid.UUID) error {
	return u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		apptType, err := u.typeRepo.FindByID(tx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment type %s: %+v", id, err)
			return err
		}
		if apptType == nil {
			return domain.ErrAppointmentTypeNotFound
		}

		referenced, err := u.typeRepo.IsReferenced(tx, id)
		if err != nil {
			u.log.Warnf("Failed to check references of appointment type %s: %+v", id, err)
			return err
		}
		if referenced {
			return domain.ErrAppointmentTypeInUse
		}

		if _, err := u.typeRepo.Delete(tx, id); err != nil {
			u.log.Warnf("Failed to delete appointment type %s: %+v", id, err)
			return err
		}
		return u.auditService.LogDelete(ctx, tx, middleware.ActorFromContext(ctx),
			entity.AuditActionTypeDelete, entity.AuditEntityAppointmentType, id.String(), apptType)
	})
}

// SeedDefaults fills an empty registry with the default catalogue and returns
// how many types were created.
func (u *appointmentTypeUsecase) SeedDefaults(ctx context.Context) (int, error) {
	var created int
	err := u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		count, err := u.typeRepo.Count(tx)
		if err != nil {
			u.log.Warnf("Failed to count appointment types: %+v", err)
			return err
		}
		if count > 0 {
			return nil
		}

		for _, apptType := range entity.DefaultAppointmentTypes() {
			if err := u.typeRepo.Create(tx, &apptType); err != nil {
				u.log.Warnf("Failed to seed appointment type: %+v", err)
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		u.log.Infof("Seeded %d default appointment types", created)
	}
	return created, nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	return nil
}
