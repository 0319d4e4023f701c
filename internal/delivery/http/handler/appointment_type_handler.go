package handler

import (
	"net/http"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"
	"nutrition-booking/pkg/validator"
)

type AppointmentTypeHandler struct {
	typeUsecase usecase.AppointmentTypeUsecase
	validator   *validator.CustomValidator
}

func NewAppointmentTypeHandler(typeUsecase usecase.AppointmentTypeUsecase, validator *validator.CustomValidator) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{
		typeUsecase: typeUsecase,
		validator:   validator,
	}
}

// ListActive is the public catalogue
func (h *AppointmentTypeHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeUsecase.ListAppointmentTypes(r.Context(), true)
	if err != nil {
		writeError(w, err, "Failed to get appointment types")
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", types)
}

func (h *AppointmentTypeHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidVar(w, r, "id", "appointment type ID")
	if !ok {
		return
	}

	apptType, err := h.typeUsecase.GetAppointmentType(r.Context(), id, true)
	if err != nil {
		writeError(w, err, "Failed to get appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type retrieved successfully", apptType)
}

// ListAll includes inactive types unless ?active=true
func (h *AppointmentTypeHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	active, ok := queryBool(w, r, "active")
	if !ok {
		return
	}

	types, err := h.typeUsecase.ListAppointmentTypes(r.Context(), active != nil && *active)
	if err != nil {
		writeError(w, err, "Failed to get appointment types")
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", types)
}

func (h *AppointmentTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidVar(w, r, "id", "appointment type ID")
	if !ok {
		return
	}

	apptType, err := h.typeUsecase.GetAppointmentType(r.Context(), id, false)
	if err != nil {
		writeError(w, err, "Failed to get appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type retrieved successfully", apptType)
}

func (h *AppointmentTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	apptType, err := h.typeUsecase.CreateAppointmentType(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create appointment type")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment type created successfully", apptType)
}

func (h *AppointmentTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidVar(w, r, "id", "appointment type ID")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	apptType, err := h.typeUsecase.UpdateAppointmentType(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type updated successfully", apptType)
}

func (h *AppointmentTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidVar(w, r, "id", "appointment type ID")
	if !ok {
		return
	}

	if err := h.typeUsecase.DeleteAppointmentType(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type deleted successfully", nil)
}
