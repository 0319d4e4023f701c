package usecase

import (
	"context"
	"errors"

	"nutrition-booking/internal/converter"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		tx:           tx,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error) {
	page, limit := normalizePage(query.Page, query.Limit)
	logs, total, err := u.auditLogRepo.FindAll(u.tx.Conn(ctx), &entity.AuditLogFilter{
		Action:   query.Action,
		EntityID: query.EntityID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.tx.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
