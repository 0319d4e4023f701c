package service

import (
	"context"

	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes audit entries on the caller's transaction so the entry
// commits or rolls back together with the change it describes.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.write(tx, actorID, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, actorID, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return s.write(tx, actorID, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(tx *gorm.DB, actorID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		Metadata: entity.JSON{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
