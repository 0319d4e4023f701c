package dto

import (
	"time"

	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// Query DTOs

type AuditLogListQuery struct {
	Action   string
	EntityID string
	Page     int
	Limit    int
}

// Response DTOs

type AuditLogResponse struct {
	ID         int64       `json:"id"`
	ActorID    *uuid.UUID  `json:"actor_id,omitempty"`
	Action     string      `json:"action"`
	EntityName string      `json:"entity_name"`
	EntityID   string      `json:"entity_id"`
	Metadata   entity.JSON `json:"metadata"`
	CreatedAt  time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
