package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentTypeRequest struct {
	Name        map[string]string `json:"name" validate:"required,min=1,dive,required"`
	Description map[string]string `json:"description"`
	Duration    int               `json:"duration" validate:"required,gt=0,lte=480"`
	Price       decimal.Decimal   `json:"price"`
	Color       string            `json:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool             `json:"is_active"`
}

type UpdateAppointmentTypeRequest struct {
	Name        map[string]string `json:"name" validate:"required,min=1,dive,required"`
	Description map[string]string `json:"description"`
	Duration    int               `json:"duration" validate:"required,gt=0,lte=480"`
	Price       decimal.Decimal   `json:"price"`
	Color       string            `json:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool             `json:"is_active"`
}

// Response DTOs

type AppointmentTypeResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description,omitempty"`
	Duration    int               `json:"duration"`
	Price       decimal.Decimal   `json:"price"`
	Color       string            `json:"color"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type AppointmentTypeListResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	Total            int                       `json:"total"`
}
