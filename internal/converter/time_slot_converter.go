package converter

import (
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain/entity"
)

// TimeSlotToResponse converts a TimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot *entity.TimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.TimeSlotResponse{
		ID:                slot.ID,
		Date:              slot.SlotDate.Format(entity.DateFormat),
		StartTime:         slot.StartTime.String(),
		EndTime:           slot.EndTime.String(),
		MaxAppointments:   slot.MaxAppointments,
		IsAvailable:       slot.IsAvailable,
		AppointmentTypeID: slot.AppointmentTypeID,
		CreatedAt:         slot.CreatedAt,
		UpdatedAt:         slot.UpdatedAt,
	}
}

// TimeSlotsToResponses converts a slice of TimeSlot entities to DTOs
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeSlotToResponse(&slots[i])
	}
	return responses
}

// SlotKeyOf returns the natural key of a slot
func SlotKeyOf(slot *entity.TimeSlot) dto.SlotKey {
	return dto.SlotKey{
		Date:      slot.SlotDate.Format(entity.DateFormat),
		StartTime: slot.StartTime.String(),
	}
}

// SlotOccupancyToResponse converts a slot with its live count to SlotAvailabilityResponse DTO
func SlotOccupancyToResponse(o *entity.SlotOccupancy) dto.SlotAvailabilityResponse {
	return dto.SlotAvailabilityResponse{
		ID:                  o.ID,
		Date:                o.SlotDate.Format(entity.DateFormat),
		StartTime:           o.StartTime.String(),
		EndTime:             o.EndTime.String(),
		MaxAppointments:     o.MaxAppointments,
		CurrentAppointments: o.CurrentAppointments,
		Remaining:           o.Remaining(),
		IsAvailable:         o.IsAvailable,
		AppointmentTypeID:   o.AppointmentTypeID,
	}
}

// SlotOccupanciesToResponses converts a slice of SlotOccupancy values to DTOs
func SlotOccupanciesToResponses(slots []entity.SlotOccupancy) []dto.SlotAvailabilityResponse {
	responses := make([]dto.SlotAvailabilityResponse, len(slots))
	for i := range slots {
		responses[i] = SlotOccupancyToResponse(&slots[i])
	}
	return responses
}
