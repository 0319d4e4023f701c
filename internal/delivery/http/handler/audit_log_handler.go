package handler

import (
	"net/http"
	"strconv"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/usecase"
	"nutrition-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, err, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := dto.AuditLogListQuery{
		Action:   r.URL.Query().Get("action"),
		EntityID: r.URL.Query().Get("entity_id"),
	}
	var ok bool
	if query.Page, ok = queryInt(w, r, "page"); !ok {
		return
	}
	if query.Limit, ok = queryInt(w, r, "limit"); !ok {
		return
	}

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), &query)
	if err != nil {
		writeError(w, err, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully",
		auditLogs.Logs, response.NewMeta(auditLogs.Page, auditLogs.Limit, auditLogs.Total))
}
