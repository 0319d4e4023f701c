package converter

import (
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		GuestName:         a.GuestName,
		GuestEmail:        a.GuestEmail,
		GuestPhone:        a.GuestPhone,
		AppointmentTypeID: a.AppointmentTypeID,
		TimeSlotID:        a.TimeSlotID,
		Date:              a.AppointmentDate.Format(entity.DateFormat),
		Time:              a.AppointmentTime.String(),
		Duration:          a.Duration,
		Status:            string(a.Status),
		PaymentStatus:     string(a.PaymentStatus),
		PaymentAmount:     a.PaymentAmount,
		Notes:             a.Notes,
		AdminNotes:        a.AdminNotes,
		AppointmentType:   AppointmentTypeToResponse(a.AppointmentType),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		ConfirmedAt:       a.ConfirmedAt,
		CancelledAt:       a.CancelledAt,
		CompletedAt:       a.CompletedAt,
		NoShowAt:          a.NoShowAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
