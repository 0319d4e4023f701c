package handler

import (
	"net/http"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

func (h *AvailabilityHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	query, ok := availabilityQuery(w, r)
	if !ok {
		return
	}

	availability, err := h.availabilityUsecase.ListAvailable(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

func (h *AvailabilityHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	query, ok := availabilityQuery(w, r)
	if !ok {
		return
	}

	overview, err := h.availabilityUsecase.GetOverview(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to get availability overview")
		return
	}

	response.Success(w, http.StatusOK, "Availability overview retrieved successfully", overview)
}

func availabilityQuery(w http.ResponseWriter, r *http.Request) (*dto.AvailabilityQuery, bool) {
	typeID, ok := queryUUID(w, r, "appointment_type_id")
	if !ok {
		return nil, false
	}
	return &dto.AvailabilityQuery{
		StartDate:         r.URL.Query().Get("start_date"),
		EndDate:           r.URL.Query().Get("end_date"),
		AppointmentTypeID: typeID,
	}, true
}
