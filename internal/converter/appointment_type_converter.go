package converter

import (
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain/entity"
)

// AppointmentTypeToResponse converts an AppointmentType entity to AppointmentTypeResponse DTO
func AppointmentTypeToResponse(apptType *entity.AppointmentType) *dto.AppointmentTypeResponse {
	if apptType == nil {
		return nil
	}

	return &dto.AppointmentTypeResponse{
		ID:          apptType.ID,
		Name:        apptType.Name,
		Description: apptType.Description,
		Duration:    apptType.Duration,
		Price:       apptType.Price,
		Color:       apptType.Color,
		IsActive:    apptType.IsActive,
		CreatedAt:   apptType.CreatedAt,
		UpdatedAt:   apptType.UpdatedAt,
	}
}

// AppointmentTypesToResponses converts a slice of AppointmentType entities to DTOs
func AppointmentTypesToResponses(types []entity.AppointmentType) []dto.AppointmentTypeResponse {
	responses := make([]dto.AppointmentTypeResponse, len(types))
	for i := range types {
		responses[i] = *AppointmentTypeToResponse(&types[i])
	}
	return responses
}
