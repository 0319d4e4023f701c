package handler

import (
	"net/http"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"
	"nutrition-booking/pkg/validator"
)

type TimeSlotHandler struct {
	slotUsecase usecase.TimeSlotUsecase
	validator   *validator.CustomValidator
}

func NewTimeSlotHandler(slotUsecase usecase.TimeSlotUsecase, validator *validator.CustomValidator) *TimeSlotHandler {
	return &TimeSlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *TimeSlotHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateSlotsRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.slotUsecase.GenerateSlots(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to generate slots")
		return
	}

	response.Success(w, http.StatusCreated, "Slots generated successfully", result)
}

func (h *TimeSlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	slot, err := h.slotUsecase.CreateSlot(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create slot")
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

func (h *TimeSlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slotID, ok := uuidVar(w, r, "id", "slot ID")
	if !ok {
		return
	}

	slot, err := h.slotUsecase.GetSlot(r.Context(), slotID)
	if err != nil {
		writeError(w, err, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *TimeSlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	query := dto.SlotListQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	var ok bool
	if query.IsAvailable, ok = queryBool(w, r, "is_available"); !ok {
		return
	}
	if query.AppointmentTypeID, ok = queryUUID(w, r, "appointment_type_id"); !ok {
		return
	}

	slots, err := h.slotUsecase.ListSlots(r.Context(), &query)
	if err != nil {
		writeError(w, err, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *TimeSlotHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	slotID, ok := uuidVar(w, r, "id", "slot ID")
	if !ok {
		return
	}

	var req dto.SetSlotAvailabilityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	slot, err := h.slotUsecase.SetAvailability(r.Context(), slotID, *req.IsAvailable)
	if err != nil {
		writeError(w, err, "Failed to update slot availability")
		return
	}

	response.Success(w, http.StatusOK, "Slot availability updated successfully", slot)
}

func (h *TimeSlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	slotID, ok := uuidVar(w, r, "id", "slot ID")
	if !ok {
		return
	}

	if err := h.slotUsecase.DeleteSlot(r.Context(), slotID); err != nil {
		writeError(w, err, "Failed to delete slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}
