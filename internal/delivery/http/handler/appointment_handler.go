package handler

import (
	"net/http"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"
	"nutrition-booking/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Reserve books a slot for a guest or, with a bearer token, for the logged-in client
func (h *AppointmentHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req dto.ReserveAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.Reserve(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to reserve appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment reserved successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelMyAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.CancelMyAppointment(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	query := dto.AppointmentListQuery{
		Status:    r.URL.Query().Get("status"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	var ok bool
	if query.SlotID, ok = queryUUID(w, r, "slot_id"); !ok {
		return
	}
	if query.Page, ok = queryInt(w, r, "page"); !ok {
		return
	}
	if query.Limit, ok = queryInt(w, r, "limit"); !ok {
		return
	}

	result, err := h.appointmentUsecase.ListAppointments(r.Context(), &query)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully",
		result.Appointments, response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		writeError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.RecordPayment(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err, "Failed to record payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment recorded successfully", appointment)
}

func (h *AppointmentHandler) UpdateAdminNotes(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	var req dto.UpdateAdminNotesRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAdminNotes(r.Context(), appointmentID, &req)
	if err != nil {
		writeError(w, err, "Failed to update admin notes")
		return
	}

	response.Success(w, http.StatusOK, "Admin notes updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := uuidVar(w, r, "id", "appointment ID")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
